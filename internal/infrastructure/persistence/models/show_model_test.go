//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/shows"

	"github.com/stretchr/testify/assert"
)

func TestShowModel_ToDomain(t *testing.T) {
	showModel := &ShowModel{
		ID:        "test-id",
		ArtistID:  "artist-id",
		VenueID:   "venue-id",
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	show := showModel.ToDomain()

	assert.Equal(t, showModel.ID, show.ID)
	assert.Equal(t, showModel.ArtistID, show.ArtistID)
	assert.Equal(t, showModel.VenueID, show.VenueID)
	assert.Equal(t, showModel.StartTime, show.StartTime)
	assert.Equal(t, showModel.CreatedAt, show.CreatedAt)
}

func TestShowModel_FromDomain(t *testing.T) {
	show := &shows.Show{
		ID:        "test-id",
		ArtistID:  "artist-id",
		VenueID:   "venue-id",
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC),
		CreatedAt: time.Now(),
	}

	showModel := &ShowModel{}
	showModel.FromDomain(show)

	assert.Equal(t, show.ID, showModel.ID)
	assert.Equal(t, show.ArtistID, showModel.ArtistID)
	assert.Equal(t, show.VenueID, showModel.VenueID)
	assert.Equal(t, show.StartTime, showModel.StartTime)
	assert.Equal(t, show.CreatedAt, showModel.CreatedAt)
}
