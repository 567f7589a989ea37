package repo

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpress/src/core/domain"
)

func TestTranslate(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, translate(nil))
	})

	t.Run("no rows is not found", func(t *testing.T) {
		err := translate(fmt.Errorf("scan: %w", pgx.ErrNoRows))

		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("unique violation on slug", func(t *testing.T) {
		pgErr := &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "posts_slug_key",
			Message:        `duplicate key value violates unique constraint "posts_slug_key"`,
		}

		err := translate(pgErr)

		var se *domain.StoreError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, domain.CodeUniqueViolation, se.Code)
		assert.Equal(t, "posts_slug_key", se.Constraint)
		assert.True(t, domain.IsUniqueViolationOn(err, domain.FieldSlug))
		assert.ErrorIs(t, err, pgErr)
	})

	t.Run("not null keeps the column", func(t *testing.T) {
		err := translate(&pgconn.PgError{Code: "23502", ColumnName: "title"})

		var se *domain.StoreError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "title", se.Column)
		assert.Equal(t, "VALIDATION_ERROR", domain.HandleError(nil, err).Code)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		boom := errors.New("connection reset")

		assert.Same(t, boom, translate(boom))
	})
}

type fakeRow struct {
	err error
}

func (r fakeRow) Scan(...any) error { return r.err }

func TestScanPostError(t *testing.T) {
	_, err := scanPost(fakeRow{err: pgx.ErrNoRows})

	assert.ErrorIs(t, err, pgx.ErrNoRows)
	assert.True(t, domain.IsNotFound(translate(err)))
}
