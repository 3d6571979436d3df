//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/stretchr/testify/assert"
)

func TestVenueModel_ToDomain(t *testing.T) {
	venueModel := &VenueModel{
		ID:                 "test-id",
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Folk"},
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		SeekingTalent:      true,
		SeekingDescription: "Looking for a local artist.",
		CreatedAt:          time.Now(),
	}

	venue := venueModel.ToDomain()

	assert.Equal(t, venueModel.ID, venue.ID)
	assert.Equal(t, venueModel.Name, venue.Name)
	assert.Equal(t, venueModel.Genres, venue.Genres)
	assert.Equal(t, venueModel.Address, venue.Address)
	assert.Equal(t, venueModel.City, venue.City)
	assert.Equal(t, venueModel.State, venue.State)
	assert.Equal(t, venueModel.SeekingTalent, venue.SeekingTalent)
	assert.Equal(t, venueModel.CreatedAt, venue.CreatedAt)
}

func TestVenueModel_FromDomain(t *testing.T) {
	venue := &venues.Venue{
		ID:           "test-id",
		Name:         "The Dueling Pianos Bar",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		ImageLink:    "https://example.com/image.jpg",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		CreatedAt:    time.Now(),
	}

	venueModel := &VenueModel{}
	venueModel.FromDomain(venue)

	assert.Equal(t, venue.ID, venueModel.ID)
	assert.Equal(t, venue.Name, venueModel.Name)
	assert.Equal(t, venue.Genres, venueModel.Genres)
	assert.Equal(t, venue.Website, venueModel.Website)
	assert.Equal(t, venue.ImageLink, venueModel.ImageLink)
	assert.Equal(t, venue.FacebookLink, venueModel.FacebookLink)
	assert.Equal(t, venue.CreatedAt, venueModel.CreatedAt)
}

func TestModelTableNames(t *testing.T) {
	assert.Equal(t, "venues", VenueModel{}.TableName())
	assert.Equal(t, "artists", ArtistModel{}.TableName())
	assert.Equal(t, "shows", ShowModel{}.TableName())
}
