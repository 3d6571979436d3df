//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/stretchr/testify/mock"
)

// MockVenueService is a mock implementation of VenueService
type MockVenueService struct {
	mock.Mock
}

func (m *MockVenueService) Create(ctx context.Context, venue *venues.Venue) (*venues.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.Venue), args.Error(1)
}

func (m *MockVenueService) GetByID(ctx context.Context, venueID string) (*venues.VenueDetails, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.VenueDetails), args.Error(1)
}

func (m *MockVenueService) ListAreas(ctx context.Context) ([]*venues.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*venues.Area), args.Error(1)
}

func (m *MockVenueService) Search(ctx context.Context, term string) (*venues.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.SearchResult), args.Error(1)
}

func (m *MockVenueService) UpdateByID(ctx context.Context, venue *venues.Venue) (*venues.Venue, error) {
	args := m.Called(ctx, venue)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*venues.Venue), args.Error(1)
}

func (m *MockVenueService) DeleteByID(ctx context.Context, venueID string) error {
	args := m.Called(ctx, venueID)
	return args.Error(0)
}

// MockArtistService is a mock implementation of ArtistService
type MockArtistService struct {
	mock.Mock
}

func (m *MockArtistService) Create(ctx context.Context, artist *artists.Artist) (*artists.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artists.Artist), args.Error(1)
}

func (m *MockArtistService) GetByID(ctx context.Context, artistID string) (*artists.ArtistDetails, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artists.ArtistDetails), args.Error(1)
}

func (m *MockArtistService) List(ctx context.Context, query *artists.ArtistQuery) ([]*artists.Artist, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*artists.Artist), args.Error(1)
}

func (m *MockArtistService) Search(ctx context.Context, term string) (*artists.SearchResult, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artists.SearchResult), args.Error(1)
}

func (m *MockArtistService) UpdateByID(ctx context.Context, artist *artists.Artist) (*artists.Artist, error) {
	args := m.Called(ctx, artist)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*artists.Artist), args.Error(1)
}

// MockShowService is a mock implementation of ShowService
type MockShowService struct {
	mock.Mock
}

func (m *MockShowService) Create(ctx context.Context, show *shows.Show) (*shows.Show, error) {
	args := m.Called(ctx, show)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shows.Show), args.Error(1)
}

func (m *MockShowService) List(ctx context.Context, query *shows.ShowQuery) ([]*shows.ShowDetails, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shows.ShowDetails), args.Error(1)
}
