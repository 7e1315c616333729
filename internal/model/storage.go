package model

import (
	"context"
)

// Storage keeps rendered documents by key. Get returns ErrNotFound for an absent key.
type Storage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
