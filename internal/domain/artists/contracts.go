package artists

import (
	"context"
)

// ArtistService defines methods for managing artist listings.
type ArtistService interface {
	// Create registers a new artist listing.
	// It returns the stored Artist and any error encountered during creation.
	Create(ctx context.Context, artist *Artist) (*Artist, error)

	// GetByID retrieves an artist by ID together with its past and upcoming shows.
	GetByID(ctx context.Context, artistID string) (*ArtistDetails, error)

	// List retrieves artists considering a query filter when set.
	List(ctx context.Context, query *ArtistQuery) ([]*Artist, error)

	// Search retrieves artists whose name contains the given term,
	// case-insensitively.
	Search(ctx context.Context, term string) (*SearchResult, error)

	// UpdateByID updates the artist with the given entity's ID.
	UpdateByID(ctx context.Context, artist *Artist) (*Artist, error)
}

// ArtistRepository defines the interface for artist persistence operations
type ArtistRepository interface {
	// Create adds a new Artist to the database
	Create(ctx context.Context, artist *Artist) error
	// List lists Artists in the database with optional filter
	List(ctx context.Context, query *ArtistQuery) ([]*Artist, error)
	// GetByID retrieves an Artist from the database by ID
	GetByID(ctx context.Context, artistID string) (*Artist, error)
	// SearchByName retrieves Artists whose name contains the given term
	SearchByName(ctx context.Context, term string) ([]*Artist, error)
	// UpdateByID updates an Artist in the database by ID
	UpdateByID(ctx context.Context, artist *Artist) error
	// DeleteByID deletes an Artist in the database by ID
	DeleteByID(ctx context.Context, artistID string) error
}
