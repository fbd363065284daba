package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository"
)

var errUnique = errors.New("UNIQUE constraint failed: users.email")

func isUnique(err error) bool {
	return errors.Is(err, errUnique)
}

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: sql.ErrNoRows, want: repository.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan user: %w", sql.ErrNoRows), want: repository.ErrNotFound},
		{name: "unique violation", in: errUnique, want: repository.ErrConflict},
		{name: "already not found", in: repository.ErrNotFound, want: repository.ErrNotFound},
		{name: "already conflict", in: repository.ErrConflict, want: repository.ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := repository.MapError(tc.in, isUnique)
			if tc.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.want)
		})
	}
}

func TestMapErrorUnexpectedKeepsDetail(t *testing.T) {
	native := errors.New("connection refused")

	err := repository.MapError(native, isUnique)

	var unexpected *repository.UnexpectedError
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, "connection refused", unexpected.Detail)
	assert.ErrorIs(t, err, native)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.NotErrorIs(t, err, repository.ErrConflict)
}

func TestMapErrorIsIdempotent(t *testing.T) {
	first := repository.MapError(errors.New("disk I/O error"), isUnique)
	second := repository.MapError(first, isUnique)

	assert.Same(t, first, second)
}

func TestMapErrorWithoutUniquePredicate(t *testing.T) {
	err := repository.MapError(errUnique, nil)

	var unexpected *repository.UnexpectedError
	assert.ErrorAs(t, err, &unexpected)
}
