//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence"
	"github.com/deividmarreiro/fyyur/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowService_Create_Success(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	artist := persistence.CreateTestArtist(t, "Guns N Petals")
	venue := persistence.CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, services.DBContext.ArtistRepo.Create(ctx, artist))
	require.NoError(t, services.DBContext.VenueRepo.Create(ctx, venue))

	show, err := services.ShowService.Create(ctx, &shows.Show{
		ArtistID:  artist.ID,
		VenueID:   venue.ID,
		StartTime: time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, show.ID)
	assert.False(t, show.CreatedAt.IsZero())
}

func TestShowService_Create_UnknownArtist_Fails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	venue := persistence.CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, services.DBContext.VenueRepo.Create(ctx, venue))

	_, err := services.ShowService.Create(ctx, &shows.Show{
		ArtistID:  uuid.NewString(),
		VenueID:   venue.ID,
		StartTime: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot book show")
	assert.Contains(t, err.Error(), "not found")
}

func TestShowService_Create_UnknownVenue_Fails(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	artist := persistence.CreateTestArtist(t, "Guns N Petals")
	require.NoError(t, services.DBContext.ArtistRepo.Create(ctx, artist))

	_, err := services.ShowService.Create(ctx, &shows.Show{
		ArtistID:  artist.ID,
		VenueID:   uuid.NewString(),
		StartTime: time.Now().Add(24 * time.Hour),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot book show")
}

func TestShowService_List_JoinsArtistAndVenueFields(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	artist := persistence.CreateTestArtist(t, "The Wild Sax Band")
	artist.ImageLink = "https://example.com/sax.jpg"
	venue := persistence.CreateTestVenue(t, "Park Square Live Music & Coffee")
	require.NoError(t, services.DBContext.ArtistRepo.Create(ctx, artist))
	require.NoError(t, services.DBContext.VenueRepo.Create(ctx, venue))

	show := persistence.CreateTestShow(t, artist, venue, time.Now().Add(24*time.Hour))
	require.NoError(t, services.DBContext.ShowRepo.Create(ctx, show))

	detailsList, err := services.ShowService.List(ctx, shows.NewShowQuery())
	require.NoError(t, err)
	require.Len(t, detailsList, 1)
	assert.Equal(t, show.ID, detailsList[0].ID)
	assert.Equal(t, "The Wild Sax Band", detailsList[0].ArtistName)
	assert.Equal(t, "https://example.com/sax.jpg", detailsList[0].ArtistImageLink)
	assert.Equal(t, "Park Square Live Music & Coffee", detailsList[0].VenueName)
}

func TestShowService_List_FilterUpcomingOnly(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	artist := persistence.CreateTestArtist(t, "The Wild Sax Band")
	venue := persistence.CreateTestVenue(t, "Park Square Live Music & Coffee")
	require.NoError(t, services.DBContext.ArtistRepo.Create(ctx, artist))
	require.NoError(t, services.DBContext.VenueRepo.Create(ctx, venue))

	now := time.Now()
	pastShow := persistence.CreateTestShow(t, artist, venue, now.Add(-24*time.Hour))
	upcomingShow := persistence.CreateTestShow(t, artist, venue, now.Add(24*time.Hour))
	require.NoError(t, services.DBContext.ShowRepo.Create(ctx, pastShow))
	require.NoError(t, services.DBContext.ShowRepo.Create(ctx, upcomingShow))

	query := shows.NewShowQuery()
	query.StartsAfter = now

	detailsList, err := services.ShowService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, detailsList, 1)
	assert.Equal(t, upcomingShow.ID, detailsList[0].ID)
}

func TestShowService_List_Empty(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	detailsList, err := services.ShowService.List(context.Background(), shows.NewShowQuery())
	require.NoError(t, err)
	assert.Empty(t, detailsList)
}
