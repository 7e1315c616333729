package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dtroode/agreement-server/internal/model"
)

const defaultMaxBody = 4 << 20

// readFields returns the named string fields of a JSON, urlencoded or
// multipart body. Missing fields come back empty.
func readFields(w http.ResponseWriter, r *http.Request, maxBody int64, names ...string) (map[string]string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)
	out := make(map[string]string, len(names))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: malformed json body: %v", model.ErrInvalidInput, err)
		}
		for _, name := range names {
			if v, ok := body[name].(string); ok {
				out[name] = v
			}
		}
		return out, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxBody); err != nil {
			return nil, fmt.Errorf("%w: malformed form body: %v", model.ErrInvalidInput, err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: malformed form body: %v", model.ErrInvalidInput, err)
	}
	for _, name := range names {
		out[name] = r.PostFormValue(name)
	}
	return out, nil
}

// readImage returns an uploaded image from the multipart field name or the raw body.
func readImage(w http.ResponseWriter, r *http.Request, maxBody int64, name string) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable body: %v", model.ErrInvalidInput, err)
		}
		return data, nil
	}

	if err := r.ParseMultipartForm(maxBody); err != nil {
		return nil, fmt.Errorf("%w: malformed form body: %v", model.ErrInvalidInput, err)
	}
	f, _, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, fmt.Errorf("%w: %s file is required", model.ErrInvalidInput, name)
		}
		return nil, fmt.Errorf("%w: unreadable upload: %v", model.ErrInvalidInput, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable upload: %v", model.ErrInvalidInput, err)
	}
	return data, nil
}

func agreementID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		// Ids are opaque to clients; a malformed one names no agreement.
		return uuid.Nil, fmt.Errorf("agreement %q: %w", chi.URLParam(r, "id"), model.ErrNotFound)
	}
	return id, nil
}
