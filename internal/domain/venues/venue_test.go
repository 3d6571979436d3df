//go:build unit
// +build unit

package venues

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenue() Venue {
	return Venue{
		ID:        uuid.NewString(),
		Name:      "The Musical Hop",
		Genres:    []string{"Jazz", "Folk"},
		Address:   "1015 Folsom Street",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "123-123-1234",
		CreatedAt: time.Now(),
	}
}

func TestVenueValidation_Valid(t *testing.T) {
	venue := validVenue()
	assert.NoError(t, venue.Validate())
}

func TestVenueValidation_MissingName(t *testing.T) {
	venue := validVenue()
	venue.Name = ""

	err := venue.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
}

func TestVenueValidation_InvalidID(t *testing.T) {
	venue := validVenue()
	venue.ID = "not-a-uuid"

	err := venue.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: ID, Tag: uuid4")
}

func TestVenueValidation_EmptyGenres(t *testing.T) {
	venue := validVenue()
	venue.Genres = []string{}

	err := venue.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Genres, Tag: min")
}

func TestVenueValidation_EmptyGenreEntry(t *testing.T) {
	venue := validVenue()
	venue.Genres = []string{"Jazz", ""}

	err := venue.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Tag: min")
}

func TestVenueValidation_MissingCreatedAt(t *testing.T) {
	venue := validVenue()
	venue.CreatedAt = time.Time{}

	err := venue.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: CreatedAt, Tag: required")
}

func TestNewVenueQuery_Defaults(t *testing.T) {
	query := NewVenueQuery()

	assert.Equal(t, 100, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.NoError(t, query.Validate())
}

func TestVenueQueryValidation_InvalidSortBy(t *testing.T) {
	query := NewVenueQuery()
	query.SortBy = "phone"

	assert.Error(t, query.Validate())
}

func TestVenueQueryValidation_NegativeLimit(t *testing.T) {
	query := NewVenueQuery()
	query.Limit = -1

	err := query.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit must not be negative")
}
