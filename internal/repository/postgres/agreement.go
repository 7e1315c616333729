package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/agreement-server/internal/model"
)

var _ model.AgreementStore = (*AgreementRepository)(nil)

const verificationCodeIndex = "agreements_verification_code_key"

const agreementColumns = `id, content, COALESCE(signature1, ''), COALESCE(signature2, ''), created_at, signed_at,
		       verification_data, COALESCE(verification_code, ''), last_verified_at`

type AgreementRepository struct {
	db DB
}

func NewAgreementRepository(db DB) *AgreementRepository {
	return &AgreementRepository{
		db: db,
	}
}

// Create stores the agreement together with its verification record and code.
// Either everything is written or nothing is.
func (r *AgreementRepository) Create(ctx context.Context, agreement model.Agreement) (model.Agreement, error) {
	if strings.TrimSpace(agreement.Content) == "" {
		return model.Agreement{}, fmt.Errorf("%w: content is required", model.ErrInvalidInput)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return model.Agreement{}, fmt.Errorf("%w: failed to begin transaction: %w", model.ErrPersistence, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const query = `INSERT INTO agreements (id, content, created_at) VALUES ($1, $2, $3)`
	if _, err := tx.Exec(ctx, query, agreement.ID, agreement.Content, agreement.CreatedAt); err != nil {
		return model.Agreement{}, fmt.Errorf("%w: failed to insert agreement: %w", model.ErrPersistence, err)
	}

	if err := r.attachVerification(ctx, tx, agreement.ID, agreement.Verification, agreement.VerificationCode); err != nil {
		return model.Agreement{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Agreement{}, fmt.Errorf("%w: failed to commit agreement: %w", model.ErrPersistence, err)
	}

	return agreement, nil
}

func (r *AgreementRepository) attachVerification(ctx context.Context, tx pgx.Tx, id uuid.UUID, record model.VerificationRecord, code string) error {
	if code == "" || record.IsZero() {
		return fmt.Errorf("%w: verification record and code are required", model.ErrInvalidInput)
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal verification record: %w", err)
	}

	const query = `UPDATE agreements SET verification_data = $2, verification_code = $3 WHERE id = $1`
	cmd, err := tx.Exec(ctx, query, id, data, code)
	if err != nil {
		if isUniqueViolation(err, verificationCodeIndex) {
			return model.ErrDuplicateCode
		}
		return fmt.Errorf("%w: failed to attach verification: %w", model.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

// Sign records both signatures once. A second attempt fails with
// model.ErrAlreadySigned instead of overwriting the first.
func (r *AgreementRepository) Sign(ctx context.Context, id uuid.UUID, signature1, signature2 string, signedAt time.Time) (model.Agreement, error) {
	if signature1 == "" || signature2 == "" {
		return model.Agreement{}, fmt.Errorf("%w: both signatures are required", model.ErrValidation)
	}

	// timestamptz keeps microseconds; the record copy must match the column.
	signedAt = signedAt.UTC().Truncate(time.Microsecond)
	query := `
		UPDATE agreements
		SET signature1 = $2,
		    signature2 = $3,
		    signed_at = $4,
		    verification_data = verification_data || jsonb_build_object('status', $5::text, 'signed_at', $6::text)
		WHERE id = $1 AND signed_at IS NULL
		RETURNING ` + agreementColumns

	agreement, err := scanAgreement(r.db.QueryRow(ctx, query,
		id, signature1, signature2, signedAt, string(model.RecordStatusSigned), signedAt.Format(time.RFC3339Nano),
	))
	if err == nil {
		return agreement, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return model.Agreement{}, fmt.Errorf("%w: failed to sign agreement: %w", model.ErrPersistence, err)
	}

	var exists bool
	const existsQuery = `SELECT EXISTS (SELECT 1 FROM agreements WHERE id = $1)`
	if err := r.db.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return model.Agreement{}, fmt.Errorf("%w: failed to check agreement: %w", model.ErrPersistence, err)
	}
	if !exists {
		return model.Agreement{}, model.ErrNotFound
	}
	return model.Agreement{}, model.ErrAlreadySigned
}

func (r *AgreementRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE id = $1`

	agreement, err := scanAgreement(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Agreement{}, model.ErrNotFound
		}
		return model.Agreement{}, fmt.Errorf("%w: failed to get agreement by id: %w", model.ErrPersistence, err)
	}

	return agreement, nil
}

func (r *AgreementRepository) GetByCode(ctx context.Context, code string) (model.Agreement, error) {
	query := `SELECT ` + agreementColumns + ` FROM agreements WHERE verification_code = $1`

	agreement, err := scanAgreement(r.db.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Agreement{}, model.ErrNotFound
		}
		return model.Agreement{}, fmt.Errorf("%w: failed to get agreement by code: %w", model.ErrPersistence, err)
	}

	return agreement, nil
}

func (r *AgreementRepository) TouchVerifiedAt(ctx context.Context, id uuid.UUID, verifiedAt time.Time) error {
	const query = `UPDATE agreements SET last_verified_at = $2 WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id, verifiedAt)
	if err != nil {
		return fmt.Errorf("%w: failed to update last verified time: %w", model.ErrPersistence, err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}

func scanAgreement(row pgx.Row) (model.Agreement, error) {
	var (
		agreement model.Agreement
		data      []byte
	)
	err := row.Scan(
		&agreement.ID, &agreement.Content, &agreement.Signature1, &agreement.Signature2,
		&agreement.CreatedAt, &agreement.SignedAt,
		&data, &agreement.VerificationCode, &agreement.LastVerifiedAt,
	)
	if err != nil {
		return model.Agreement{}, err
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &agreement.Verification); err != nil {
			return model.Agreement{}, fmt.Errorf("failed to decode verification data: %w", err)
		}
	}
	return agreement, nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == constraint
}
