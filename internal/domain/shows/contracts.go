package shows

import (
	"context"
)

// ShowService defines methods for managing show listings.
type ShowService interface {
	// Create registers a new show after verifying that both the referenced
	// artist and venue exist.
	Create(ctx context.Context, show *Show) (*Show, error)

	// List retrieves shows joined with artist and venue display fields,
	// considering a query filter when set.
	List(ctx context.Context, query *ShowQuery) ([]*ShowDetails, error)
}

// ShowRepository defines the interface for show persistence operations
type ShowRepository interface {
	// Create adds a new Show to the database
	Create(ctx context.Context, show *Show) error
	// List lists Shows in the database with optional filter
	List(ctx context.Context, query *ShowQuery) ([]*Show, error)
	// GetByID retrieves a Show from the database by ID
	GetByID(ctx context.Context, showID string) (*Show, error)
	// DeleteByID deletes a Show in the database by ID
	DeleteByID(ctx context.Context, showID string) error
	// DeleteByVenueID deletes all Shows booked at the given venue
	DeleteByVenueID(ctx context.Context, venueID string) error
	// DeleteByArtistID deletes all Shows booked for the given artist
	DeleteByArtistID(ctx context.Context, artistID string) error
}
