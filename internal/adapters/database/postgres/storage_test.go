package postgres

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
)

func TestValidID(t *testing.T) {
	assert.True(t, validID(uuid.NewString()))
	assert.False(t, validID(""))
	assert.False(t, validID("club-1"))
}

// Malformed ids never reach the database.
func TestMalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	clubs := NewClubStorage(nil)
	users := NewUserStorage(nil)

	_, err := clubs.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, errorz.ErrNotFound)

	assert.ErrorIs(t, clubs.Delete(ctx, "../etc"), errorz.ErrNotFound)

	found, err := clubs.Filter(ctx, dto.ClubFilter{ID: "x"}, "")
	assert.NoError(t, err)
	assert.Empty(t, found)

	_, err = users.Get(ctx, "1")
	assert.ErrorIs(t, err, errorz.ErrNotFound)
}
