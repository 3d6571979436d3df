//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueRequest_Validate_Success(t *testing.T) {
	request := VenueRequest{
		Name:    "The Musical Hop",
		Genres:  []string{"Jazz", "Folk"},
		Address: "1015 Folsom Street",
		City:    "San Francisco",
		State:   "CA",
		Phone:   "123-123-1234",
	}

	err := request.Validate()
	assert.NoError(t, err)
}

func TestVenueRequest_Validate_MissingAddress_Error(t *testing.T) {
	request := VenueRequest{
		Name:   "The Musical Hop",
		Genres: []string{"Jazz"},
		City:   "San Francisco",
		State:  "CA",
		Phone:  "123-123-1234",
	}

	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Address, Tag: required")
}

func TestVenueRequest_Validate_EmptyGenres_Error(t *testing.T) {
	request := VenueRequest{
		Name:    "The Musical Hop",
		Genres:  []string{},
		Address: "1015 Folsom Street",
		City:    "San Francisco",
		State:   "CA",
		Phone:   "123-123-1234",
	}

	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Genres, Tag: min")
}

func TestVenueRequest_ToDomain(t *testing.T) {
	request := VenueRequest{
		Name:          "The Musical Hop",
		Genres:        []string{"Jazz", "Folk"},
		Address:       "1015 Folsom Street",
		City:          "San Francisco",
		State:         "CA",
		Phone:         "123-123-1234",
		SeekingTalent: true,
	}

	venue := request.ToDomain()

	assert.Empty(t, venue.ID)
	assert.Equal(t, "The Musical Hop", venue.Name)
	assert.Equal(t, []string{"Jazz", "Folk"}, venue.Genres)
	assert.True(t, venue.SeekingTalent)
}

func TestArtistRequest_Validate_Success(t *testing.T) {
	request := ArtistRequest{
		Name:   "Guns N Petals",
		Genres: []string{"Rock n Roll"},
	}

	err := request.Validate()
	assert.NoError(t, err)
}

func TestArtistRequest_Validate_MissingName_Error(t *testing.T) {
	request := ArtistRequest{
		Genres: []string{"Jazz"},
	}

	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: Name, Tag: required")
}

func TestShowRequest_Validate_Success(t *testing.T) {
	request := ShowRequest{
		ArtistID:  "0f1aa942-6b33-44a4-ae10-ff337aee9f79",
		VenueID:   "8b4f12c4-9071-4c5e-8375-b87a4b0a3f82",
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	}

	err := request.Validate()
	assert.NoError(t, err)
}

func TestShowRequest_Validate_InvalidVenueID_Error(t *testing.T) {
	request := ShowRequest{
		ArtistID:  "0f1aa942-6b33-44a4-ae10-ff337aee9f79",
		VenueID:   "not-a-uuid",
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
	}

	err := request.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Field: VenueID, Tag: uuid4")
}

func TestNewVenueDetailsResponse_PartitionsShows(t *testing.T) {
	details := &venues.VenueDetails{
		Venue: venues.Venue{ID: "123", Name: "The Musical Hop"},
		PastShows: []venues.ShowSummary{
			{ArtistID: "a1", ArtistName: "Guns N Petals", StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
		},
		UpcomingShows: []venues.ShowSummary{
			{ArtistID: "a2", ArtistName: "The Wild Sax Band", StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
			{ArtistID: "a2", ArtistName: "The Wild Sax Band", StartTime: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
		},
		PastShowsCount:     1,
		UpcomingShowsCount: 2,
	}

	response := newVenueDetailsResponse(details)

	assert.Equal(t, "123", response.ID)
	assert.Len(t, response.PastShows, 1)
	assert.Len(t, response.UpcomingShows, 2)
	assert.Equal(t, 1, response.PastShowsCount)
	assert.Equal(t, 2, response.UpcomingShowsCount)
	assert.Equal(t, "Guns N Petals", response.PastShows[0].ArtistName)
}

func TestNewArtistDetailsResponse_EmptyShows(t *testing.T) {
	details := &artists.ArtistDetails{
		Artist: artists.Artist{ID: "456", Name: "Matt Quevedo"},
	}

	response := newArtistDetailsResponse(details)

	assert.Equal(t, "456", response.ID)
	assert.NotNil(t, response.PastShows)
	assert.NotNil(t, response.UpcomingShows)
	assert.Empty(t, response.PastShows)
	assert.Empty(t, response.UpcomingShows)
}
