//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/pkg/config"
	"github.com/deividmarreiro/fyyur/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB         *gorm.DB
	VenueRepo  venues.VenueRepository
	ArtistRepo artists.ArtistRepository
	ShowRepo   shows.ShowRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = MigrateSchema(db)
	require.NoError(t, err, "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	venueRepo, err := NewGormVenueRepository(db, logger)
	require.NoError(t, err, "Failed to create venue repository")

	artistRepo, err := NewGormArtistRepository(db, logger)
	require.NoError(t, err, "Failed to create artist repository")

	showRepo, err := NewGormShowRepository(db, logger)
	require.NoError(t, err, "Failed to create show repository")

	return &TestContext{
		DB:         db,
		VenueRepo:  venueRepo,
		ArtistRepo: artistRepo,
		ShowRepo:   showRepo,
	}
}

// CreateTestVenue creates a venue with default values
func CreateTestVenue(t *testing.T, name string) *venues.Venue {
	t.Helper()

	if name == "" {
		name = "test-venue"
	}

	return &venues.Venue{
		ID:        uuid.NewString(),
		Name:      name,
		Genres:    []string{"Jazz", "Folk"},
		Address:   "1015 Folsom Street",
		City:      "San Francisco",
		State:     "CA",
		Phone:     "123-123-1234",
		CreatedAt: time.Now(),
	}
}

// CreateTestVenueWithOptions creates a venue with custom city and state
func CreateTestVenueWithOptions(t *testing.T, name, city, state string) *venues.Venue {
	t.Helper()

	venue := CreateTestVenue(t, name)
	venue.City = city
	venue.State = state
	return venue
}

// CreateTestArtist creates an artist with default values
func CreateTestArtist(t *testing.T, name string) *artists.Artist {
	t.Helper()

	if name == "" {
		name = "test-artist"
	}

	return &artists.Artist{
		ID:        uuid.NewString(),
		Name:      name,
		Genres:    []string{"Rock n Roll"},
		City:      "San Francisco",
		State:     "CA",
		CreatedAt: time.Now(),
	}
}

// CreateTestShow creates a show binding the given artist and venue
func CreateTestShow(t *testing.T, artist *artists.Artist, venue *venues.Venue, startTime time.Time) *shows.Show {
	t.Helper()

	return &shows.Show{
		ID:        uuid.NewString(),
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: startTime,
		CreatedAt: time.Now(),
	}
}
