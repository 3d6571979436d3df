//go:build unit
// +build unit

package artists

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArtist() Artist {
	return Artist{
		ID:        uuid.NewString(),
		Name:      "Guns N Petals",
		Genres:    []string{"Rock n Roll"},
		CreatedAt: time.Now(),
	}
}

func TestArtistValidation_Valid(t *testing.T) {
	artist := validArtist()
	assert.NoError(t, artist.Validate())
}

func TestArtistValidation_OptionalLocationFields(t *testing.T) {
	// City, state and phone may stay empty
	artist := validArtist()
	artist.City = ""
	artist.State = ""
	artist.Phone = ""

	assert.NoError(t, artist.Validate())
}

func TestArtistValidation_MissingName(t *testing.T) {
	artist := validArtist()
	artist.Name = ""

	err := artist.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
}

func TestArtistValidation_MissingGenres(t *testing.T) {
	artist := validArtist()
	artist.Genres = nil

	err := artist.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Genres, Tag: required")
}

func TestArtistValidation_InvalidID(t *testing.T) {
	artist := validArtist()
	artist.ID = "not-a-uuid"

	err := artist.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: ID, Tag: uuid4")
}

func TestNewArtistQuery_Defaults(t *testing.T) {
	query := NewArtistQuery()

	assert.Equal(t, 100, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.NoError(t, query.Validate())
}

func TestArtistQueryValidation_InvalidSortOrder(t *testing.T) {
	query := NewArtistQuery()
	query.SortOrder = "sideways"

	assert.Error(t, query.Validate())
}

func TestArtistQueryValidation_NegativeOffset(t *testing.T) {
	query := NewArtistQuery()
	query.Offset = -1

	err := query.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offset must not be negative")
}
