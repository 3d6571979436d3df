package app

import (
	"context"
	"fmt"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"github.com/google/uuid"
)

// artistService implements the ArtistService interface for managing artist listings
type artistService struct {
	artistRepo artists.ArtistRepository
	venueRepo  venues.VenueRepository
	showRepo   shows.ShowRepository
	logger     logger.Logger
}

// NewArtistService creates a new artistService instance
func NewArtistService(
	artistRepo artists.ArtistRepository,
	venueRepo venues.VenueRepository,
	showRepo shows.ShowRepository,
	logger logger.Logger,
) (artists.ArtistService, error) {
	return &artistService{
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		showRepo:   showRepo,
		logger:     logger,
	}, nil
}

// Create registers a new artist listing, assigning it an ID and creation time.
func (s *artistService) Create(ctx context.Context, artist *artists.Artist) (*artists.Artist, error) {
	if artist.ID == "" {
		artist.ID = uuid.New().String()
	}
	if artist.CreatedAt.IsZero() {
		artist.CreatedAt = time.Now()
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	return artist, nil
}

// GetByID retrieves an artist by ID with its shows split into past and upcoming.
func (s *artistService) GetByID(ctx context.Context, artistID string) (*artists.ArtistDetails, error) {
	artist, err := s.artistRepo.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	query := shows.NewShowQuery()
	query.ArtistID = artistID
	query.Limit = 0 // all shows for the artist page

	showList, err := s.showRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shows for artist %s: %w", artistID, err)
	}

	details := &artists.ArtistDetails{
		Artist:        *artist,
		PastShows:     []artists.ShowSummary{},
		UpcomingShows: []artists.ShowSummary{},
	}

	now := time.Now()
	for _, show := range showList {
		venue, err := s.venueRepo.GetByID(ctx, show.VenueID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve venue for show %s: %w", show.ID, err)
		}

		summary := artists.ShowSummary{
			VenueID:        venue.ID,
			VenueName:      venue.Name,
			VenueImageLink: venue.ImageLink,
			StartTime:      show.StartTime,
		}

		if show.StartTime.After(now) {
			details.UpcomingShows = append(details.UpcomingShows, summary)
		} else {
			details.PastShows = append(details.PastShows, summary)
		}
	}

	details.PastShowsCount = len(details.PastShows)
	details.UpcomingShowsCount = len(details.UpcomingShows)

	return details, nil
}

// List retrieves artists considering a query filter when set.
func (s *artistService) List(ctx context.Context, query *artists.ArtistQuery) ([]*artists.Artist, error) {
	artistList, err := s.artistRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artistList, nil
}

// Search retrieves artists whose name contains the given term.
func (s *artistService) Search(ctx context.Context, term string) (*artists.SearchResult, error) {
	matches, err := s.artistRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}

	result := &artists.SearchResult{
		Count: len(matches),
		Data:  []artists.SearchHit{},
	}

	now := time.Now()
	for _, artist := range matches {
		query := shows.NewShowQuery()
		query.ArtistID = artist.ID
		query.StartsAfter = now
		query.Limit = 0

		upcoming, err := s.showRepo.List(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("failed to count upcoming shows for artist %s: %w", artist.ID, err)
		}

		result.Data = append(result.Data, artists.SearchHit{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: len(upcoming),
		})
	}

	return result, nil
}

// UpdateByID updates the artist carrying the given entity's ID.
func (s *artistService) UpdateByID(ctx context.Context, artist *artists.Artist) (*artists.Artist, error) {
	existing, err := s.artistRepo.GetByID(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	// Creation time is immutable
	artist.CreatedAt = existing.CreatedAt

	if err := s.artistRepo.UpdateByID(ctx, artist); err != nil {
		return nil, fmt.Errorf("failed to update artist: %w", err)
	}

	return artist, nil
}
