package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/agreement-server/internal/model"
)

var selectColumns = []string{
	"id", "content", "signature1", "signature2", "created_at", "signed_at",
	"verification_data", "verification_code", "last_verified_at",
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func newAgreement() model.Agreement {
	id := uuid.New()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return model.Agreement{
		ID:        id,
		Content:   "Party A agrees to deliver goods to Party B.",
		CreatedAt: createdAt,
		Verification: model.VerificationRecord{
			AgreementID: id.String(),
			ContentHash: "abc123",
			Timestamp:   createdAt,
			Status:      model.RecordStatusCreated,
		},
		VerificationCode: "0123456789ab",
	}
}

func agreementRow(t *testing.T, a model.Agreement) []any {
	t.Helper()
	data, err := json.Marshal(a.Verification)
	require.NoError(t, err)
	return []any{
		a.ID, a.Content, a.Signature1, a.Signature2, a.CreatedAt, a.SignedAt,
		data, a.VerificationCode, a.LastVerifiedAt,
	}
}

func TestNewAgreementRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAgreementRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestAgreementRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO agreements")).
			WithArgs(a.ID, a.Content, a.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE agreements SET verification_data")).
			WithArgs(a.ID, pgxmock.AnyArg(), a.VerificationCode).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		got, err := repo.Create(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, a, got)
	})

	t.Run("blank content", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()
		a.Content = "   "

		_, err := repo.Create(ctx, a)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("duplicate verification code", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO agreements")).
			WithArgs(a.ID, a.Content, a.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(regexp.QuoteMeta("UPDATE agreements SET verification_data")).
			WithArgs(a.ID, pgxmock.AnyArg(), a.VerificationCode).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: verificationCodeIndex})
		mock.ExpectRollback()

		_, err := repo.Create(ctx, a)
		assert.ErrorIs(t, err, model.ErrDuplicateCode)
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO agreements")).
			WithArgs(a.ID, a.Content, a.CreatedAt).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, a)
		assert.ErrorIs(t, err, model.ErrPersistence)
	})

	t.Run("missing verification record", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()
		a.VerificationCode = ""

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO agreements")).
			WithArgs(a.ID, a.Content, a.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectRollback()

		_, err := repo.Create(ctx, a)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestAgreementRepository_Sign(t *testing.T) {
	ctx := context.Background()
	signedAt := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()
		signed := a
		signed.Signature1 = "data:image/png;base64,AAAA"
		signed.Signature2 = "data:image/png;base64,BBBB"
		signed.SignedAt = &signedAt
		signed.Verification.Status = model.RecordStatusSigned
		signed.Verification.SignedAt = &signedAt

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE agreements")).
			WithArgs(a.ID, signed.Signature1, signed.Signature2, signedAt, "signed", signedAt.Format(time.RFC3339Nano)).
			WillReturnRows(pgxmock.NewRows(selectColumns).AddRow(agreementRow(t, signed)...))

		got, err := repo.Sign(ctx, a.ID, signed.Signature1, signed.Signature2, signedAt)
		require.NoError(t, err)
		assert.True(t, got.IsSigned())
		assert.Equal(t, model.RecordStatusSigned, got.Verification.Status)
		assert.Equal(t, signed.Signature1, got.Signature1)
	})

	t.Run("sub-microsecond time is truncated", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()
		precise := time.Date(2025, 3, 1, 13, 0, 0, 123456789, time.UTC)
		stored := time.Date(2025, 3, 1, 13, 0, 0, 123456000, time.UTC)

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE agreements")).
			WithArgs(id, "a", "b", stored, "signed", "2025-03-01T13:00:00.123456Z").
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.Sign(ctx, id, "a", "b", precise)
		assert.ErrorIs(t, err, model.ErrAlreadySigned)
	})

	t.Run("missing signature", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)

		_, err := repo.Sign(ctx, uuid.New(), "data:image/png;base64,AAAA", "", signedAt)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("already signed", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE agreements")).
			WithArgs(id, "a", "b", signedAt, "signed", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		_, err := repo.Sign(ctx, id, "a", "b", signedAt)
		assert.ErrorIs(t, err, model.ErrAlreadySigned)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("UPDATE agreements")).
			WithArgs(id, "a", "b", signedAt, "signed", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
			WithArgs(id).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		_, err := repo.Sign(ctx, id, "a", "b", signedAt)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestAgreementRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("by id", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(a.ID).
			WillReturnRows(pgxmock.NewRows(selectColumns).AddRow(agreementRow(t, a)...))

		got, err := repo.GetByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.Content, got.Content)
		assert.Equal(t, a.Verification.ContentHash, got.Verification.ContentHash)
		assert.False(t, got.IsSigned())
	})

	t.Run("by code", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		a := newAgreement()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE verification_code = $1")).
			WithArgs(a.VerificationCode).
			WillReturnRows(pgxmock.NewRows(selectColumns).AddRow(agreementRow(t, a)...))

		got, err := repo.GetByCode(ctx, a.VerificationCode)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE verification_code = $1")).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetByCode(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("driver failure", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
			WithArgs(id).
			WillReturnError(errors.New("boom"))

		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, model.ErrPersistence)
	})
}

func TestAgreementRepository_TouchVerifiedAt(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("SET last_verified_at")).
			WithArgs(id, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		require.NoError(t, repo.TouchVerifiedAt(ctx, id, now))
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMock(t)
		repo := NewAgreementRepository(mock)
		id := uuid.New()

		mock.ExpectExec(regexp.QuoteMeta("SET last_verified_at")).
			WithArgs(id, now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.ErrorIs(t, repo.TouchVerifiedAt(ctx, id, now), model.ErrNotFound)
	})
}
