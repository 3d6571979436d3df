// Package app contains the application services implementing the domain
// service contracts on top of the repositories.
package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"
	"github.com/deividmarreiro/fyyur/internal/pkg/logger"

	"github.com/google/uuid"
)

// venueService implements the VenueService interface for managing venue listings
type venueService struct {
	venueRepo  venues.VenueRepository
	artistRepo artists.ArtistRepository
	showRepo   shows.ShowRepository
	logger     logger.Logger
}

// NewVenueService creates a new venueService instance
func NewVenueService(
	venueRepo venues.VenueRepository,
	artistRepo artists.ArtistRepository,
	showRepo shows.ShowRepository,
	logger logger.Logger,
) (venues.VenueService, error) {
	return &venueService{
		venueRepo:  venueRepo,
		artistRepo: artistRepo,
		showRepo:   showRepo,
		logger:     logger,
	}, nil
}

// Create registers a new venue listing, assigning it an ID and creation time.
func (s *venueService) Create(ctx context.Context, venue *venues.Venue) (*venues.Venue, error) {
	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}
	if venue.CreatedAt.IsZero() {
		venue.CreatedAt = time.Now()
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	return venue, nil
}

// GetByID retrieves a venue by ID with its shows split into past and upcoming.
func (s *venueService) GetByID(ctx context.Context, venueID string) (*venues.VenueDetails, error) {
	venue, err := s.venueRepo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	query := shows.NewShowQuery()
	query.VenueID = venueID
	query.Limit = 0 // all shows for the venue page

	showList, err := s.showRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shows for venue %s: %w", venueID, err)
	}

	details := &venues.VenueDetails{
		Venue:         *venue,
		PastShows:     []venues.ShowSummary{},
		UpcomingShows: []venues.ShowSummary{},
	}

	now := time.Now()
	for _, show := range showList {
		artist, err := s.artistRepo.GetByID(ctx, show.ArtistID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve artist for show %s: %w", show.ID, err)
		}

		summary := venues.ShowSummary{
			ArtistID:        artist.ID,
			ArtistName:      artist.Name,
			ArtistImageLink: artist.ImageLink,
			StartTime:       show.StartTime,
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

// ListAreas retrieves all venues grouped by city and state.
func (s *venueService) ListAreas(ctx context.Context) ([]*venues.Area, error) {
	venueList, err := s.venueRepo.List(ctx, &venues.VenueQuery{SortBy: "name"})
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	areaIndex := make(map[string]*venues.Area)
	for _, venue := range venueList {
		numUpcoming, err := s.countUpcomingShows(ctx, venue.ID)
		if err != nil {
			return nil, err
		}

		key := venue.City + "|" + venue.State
		area, ok := areaIndex[key]
		if !ok {
			area = &venues.Area{City: venue.City, State: venue.State}
			areaIndex[key] = area
		}
		area.Venues = append(area.Venues, venues.AreaVenue{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: numUpcoming,
		})
	}

	areas := make([]*venues.Area, 0, len(areaIndex))
	for _, area := range areaIndex {
		areas = append(areas, area)
	}

	// Stable ordering for clients
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].State != areas[j].State {
			return areas[i].State < areas[j].State
		}
		return areas[i].City < areas[j].City
	})

	return areas, nil
}

// Search retrieves venues whose name contains the given term.
func (s *venueService) Search(ctx context.Context, term string) (*venues.SearchResult, error) {
	matches, err := s.venueRepo.SearchByName(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("failed to search venues: %w", err)
	}

	result := &venues.SearchResult{
		Count: len(matches),
		Data:  []venues.SearchHit{},
	}

	for _, venue := range matches {
		numUpcoming, err := s.countUpcomingShows(ctx, venue.ID)
		if err != nil {
			return nil, err
		}
		result.Data = append(result.Data, venues.SearchHit{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: numUpcoming,
		})
	}

	return result, nil
}

// UpdateByID updates the venue carrying the given entity's ID.
func (s *venueService) UpdateByID(ctx context.Context, venue *venues.Venue) (*venues.Venue, error) {
	existing, err := s.venueRepo.GetByID(ctx, venue.ID)
	if err != nil {
		return nil, err
	}

	// Creation time is immutable
	venue.CreatedAt = existing.CreatedAt

	if err := s.venueRepo.UpdateByID(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	return venue, nil
}

// DeleteByID deletes a venue and the shows booked at it.
func (s *venueService) DeleteByID(ctx context.Context, venueID string) error {
	if _, err := s.venueRepo.GetByID(ctx, venueID); err != nil {
		return err
	}

	if err := s.showRepo.DeleteByVenueID(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete shows for venue %s: %w", venueID, err)
	}

	if err := s.venueRepo.DeleteByID(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete venue %s: %w", venueID, err)
	}

	s.logger.Info("Deleted venue and dependent shows for id ", venueID)
	return nil
}

func (s *venueService) countUpcomingShows(ctx context.Context, venueID string) (int, error) {
	query := shows.NewShowQuery()
	query.VenueID = venueID
	query.StartsAfter = time.Now()
	query.Limit = 0

	upcoming, err := s.showRepo.List(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count upcoming shows for venue %s: %w", venueID, err)
	}
	return len(upcoming), nil
}
