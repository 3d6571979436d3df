package venues

import (
	"context"
)

// VenueService defines methods for managing venue listings.
type VenueService interface {
	// Create registers a new venue listing.
	// It returns the stored Venue and any error encountered during creation.
	Create(ctx context.Context, venue *Venue) (*Venue, error)

	// GetByID retrieves a venue by ID together with its past and upcoming shows.
	GetByID(ctx context.Context, venueID string) (*VenueDetails, error)

	// ListAreas retrieves all venues grouped by city and state, each venue
	// annotated with its number of upcoming shows.
	ListAreas(ctx context.Context) ([]*Area, error)

	// Search retrieves venues whose name contains the given term,
	// case-insensitively.
	Search(ctx context.Context, term string) (*SearchResult, error)

	// UpdateByID updates the venue with the given entity's ID.
	UpdateByID(ctx context.Context, venue *Venue) (*Venue, error)

	// DeleteByID deletes a venue and its dependent shows by ID.
	DeleteByID(ctx context.Context, venueID string) error
}

// VenueRepository defines the interface for venue persistence operations
type VenueRepository interface {
	// Create adds a new Venue to the database
	Create(ctx context.Context, venue *Venue) error
	// List lists Venues in the database with optional filter
	List(ctx context.Context, query *VenueQuery) ([]*Venue, error)
	// GetByID retrieves a Venue from the database by ID
	GetByID(ctx context.Context, venueID string) (*Venue, error)
	// SearchByName retrieves Venues whose name contains the given term
	SearchByName(ctx context.Context, term string) ([]*Venue, error)
	// UpdateByID updates a Venue in the database by ID
	UpdateByID(ctx context.Context, venue *Venue) error
	// DeleteByID deletes a Venue in the database by ID
	DeleteByID(ctx context.Context, venueID string) error
}
