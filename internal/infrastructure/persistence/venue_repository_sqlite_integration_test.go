//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"testing"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/infrastructure/persistence/models"
	"github.com/deividmarreiro/fyyur/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenueSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := CreateTestVenue(t, "The Musical Hop")

	err := ctx.VenueRepo.Create(context.Background(), venue)
	require.NoError(t, err)

	var createdVenueModel models.VenueModel
	err = ctx.DB.First(&createdVenueModel, "id = ?", venue.ID).Error
	require.NoError(t, err)
	assert.Equal(t, venue.ID, createdVenueModel.ID)
	assert.Equal(t, venue.Name, createdVenueModel.Name)
}

func TestVenueRepository_Create_InvalidVenue(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := &venues.Venue{} // missing required fields

	err := ctx.VenueRepo.Create(context.Background(), venue)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestVenueSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), venue))

	fetchedVenue, err := ctx.VenueRepo.GetByID(context.Background(), venue.ID)
	require.NoError(t, err)
	assert.NotNil(t, fetchedVenue)
	assert.Equal(t, venue.ID, fetchedVenue.ID)
	assert.Equal(t, []string{"Jazz", "Folk"}, fetchedVenue.Genres)
}

func TestVenueRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.VenueRepo.GetByID(context.Background(), "non-existent-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestVenueRepository_List_WithFilters(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	sfVenue := CreateTestVenueWithOptions(t, "The Musical Hop", "San Francisco", "CA")
	nyVenue := CreateTestVenueWithOptions(t, "The Dueling Pianos Bar", "New York", "NY")
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), sfVenue))
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), nyVenue))

	query := venues.NewVenueQuery()
	query.City = "New York"

	list, err := ctx.VenueRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "The Dueling Pianos Bar", list[0].Name)
}

func TestVenueRepository_List_SortAndPagination(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	for i := 1; i <= 3; i++ {
		venue := CreateTestVenue(t, fmt.Sprintf("venue-%d", i))
		require.NoError(t, ctx.VenueRepo.Create(context.Background(), venue))
	}

	query := venues.NewVenueQuery()
	query.SortBy = "name"
	query.SortOrder = "desc"
	query.Limit = 1
	query.Offset = 1

	list, err := ctx.VenueRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "venue-2", list[0].Name)
}

func TestVenueRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	query := venues.NewVenueQuery()
	query.Limit = -1

	_, err := ctx.VenueRepo.List(context.Background(), query)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}

func TestVenueRepository_SearchByName_CaseInsensitive(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), venue))

	matches, err := ctx.VenueRepo.SearchByName(context.Background(), "musical")
	require.NoError(t, err)
	assert.Len(t, matches, 1)
	assert.Equal(t, venue.ID, matches[0].ID)

	matches, err = ctx.VenueRepo.SearchByName(context.Background(), "pianos")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestVenueSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), venue))

	venue.Name = "The Renamed Hop"
	venue.SeekingTalent = true
	require.NoError(t, ctx.VenueRepo.UpdateByID(context.Background(), venue))

	var updatedVenueModel models.VenueModel
	require.NoError(t, ctx.DB.First(&updatedVenueModel, "id = ?", venue.ID).Error)
	assert.Equal(t, "The Renamed Hop", updatedVenueModel.Name)
	assert.True(t, updatedVenueModel.SeekingTalent)
}

func TestVenueSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	venue := CreateTestVenue(t, "The Musical Hop")
	require.NoError(t, ctx.VenueRepo.Create(context.Background(), venue))
	require.NoError(t, ctx.VenueRepo.DeleteByID(context.Background(), venue.ID))

	var deletedVenueModel models.VenueModel
	err := ctx.DB.First(&deletedVenueModel, "id = ?", venue.ID).Error
	assert.Error(t, err)
}
