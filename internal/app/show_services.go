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

// showService implements the ShowService interface for managing show listings
type showService struct {
	showRepo   shows.ShowRepository
	artistRepo artists.ArtistRepository
	venueRepo  venues.VenueRepository
	logger     logger.Logger
}

// NewShowService creates a new showService instance
func NewShowService(
	showRepo shows.ShowRepository,
	artistRepo artists.ArtistRepository,
	venueRepo venues.VenueRepository,
	logger logger.Logger,
) (shows.ShowService, error) {
	return &showService{
		showRepo:   showRepo,
		artistRepo: artistRepo,
		venueRepo:  venueRepo,
		logger:     logger,
	}, nil
}

// Create registers a new show. The referenced artist and venue must exist.
func (s *showService) Create(ctx context.Context, show *shows.Show) (*shows.Show, error) {
	if _, err := s.artistRepo.GetByID(ctx, show.ArtistID); err != nil {
		return nil, fmt.Errorf("cannot book show: %w", err)
	}
	if _, err := s.venueRepo.GetByID(ctx, show.VenueID); err != nil {
		return nil, fmt.Errorf("cannot book show: %w", err)
	}

	if show.ID == "" {
		show.ID = uuid.New().String()
	}
	if show.CreatedAt.IsZero() {
		show.CreatedAt = time.Now()
	}

	if err := s.showRepo.Create(ctx, show); err != nil {
		return nil, fmt.Errorf("failed to create show: %w", err)
	}

	return show, nil
}

// List retrieves shows joined with the artist and venue display fields.
func (s *showService) List(ctx context.Context, query *shows.ShowQuery) ([]*shows.ShowDetails, error) {
	showList, err := s.showRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shows: %w", err)
	}

	detailsList := make([]*shows.ShowDetails, 0, len(showList))
	for _, show := range showList {
		artist, err := s.artistRepo.GetByID(ctx, show.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve artist for show %s: %w", show.ID, err)
		}
		venue, err := s.venueRepo.GetByID(ctx, show.VenueID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve venue for show %s: %w", show.ID, err)
		}

		detailsList = append(detailsList, &shows.ShowDetails{
			ID:              show.ID,
			VenueID:         venue.ID,
			VenueName:       venue.Name,
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
		})
	}

	return detailsList, nil
}
