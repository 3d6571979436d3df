//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	VenueService  venues.VenueService
	ArtistService artists.ArtistService
	ShowService   shows.ShowService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	venueService, err := NewVenueService(dbContext.VenueRepo, dbContext.ArtistRepo, dbContext.ShowRepo, logger)
	require.NoError(t, err, "Failed to create VenueService")

	artistService, err := NewArtistService(dbContext.ArtistRepo, dbContext.VenueRepo, dbContext.ShowRepo, logger)
	require.NoError(t, err, "Failed to create ArtistService")

	showService, err := NewShowService(dbContext.ShowRepo, dbContext.ArtistRepo, dbContext.VenueRepo, logger)
	require.NoError(t, err, "Failed to create ShowService")

	return &TestServices{
		VenueService:  venueService,
		ArtistService: artistService,
		ShowService:   showService,
		DBContext:     dbContext,
	}
}
