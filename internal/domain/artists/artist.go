// Package artists defines the artist domain entities, query types and the
// service and repository contracts for artist-related operations.
package artists

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Artist entity
type Artist struct {
	ID                 string   `validate:"required,uuid4"`
	Name               string   `validate:"required,min=1,max=255"`
	Genres             []string `validate:"required,min=1,dive,min=1,max=50"`
	City               string   `validate:"omitempty,max=120"`
	State              string   `validate:"omitempty,max=120"`
	Phone              string   `validate:"omitempty,max=120"`
	Website            string   `validate:"omitempty,max=120"`
	ImageLink          string   `validate:"omitempty,max=500"`
	FacebookLink       string   `validate:"omitempty,max=120"`
	SeekingVenue       bool
	SeekingDescription string    `validate:"omitempty,max=500"`
	CreatedAt          time.Time `validate:"required"`
}

// Validate for validating Artist struct
func (a *Artist) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// ArtistQuery holds filter, sorting and pagination options for artist listings
type ArtistQuery struct {
	Name      string `validate:"omitempty,max=255"`
	City      string `validate:"omitempty,max=120"`
	State     string `validate:"omitempty,max=120"`
	SortBy    string `validate:"omitempty,oneof=name city state created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=0,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewArtistQuery creates an ArtistQuery with default pagination applied
func NewArtistQuery() *ArtistQuery {
	return &ArtistQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating ArtistQuery struct
func (q *ArtistQuery) Validate() error {
	validate := validator.New()

	if q.Limit < 0 {
		return fmt.Errorf("validation failed: limit must not be negative")
	}
	if q.Offset < 0 {
		return fmt.Errorf("validation failed: offset must not be negative")
	}

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}

// ShowSummary is a denormalized view of a show as seen from an artist page.
type ShowSummary struct {
	VenueID        string
	VenueName      string
	VenueImageLink string
	StartTime      time.Time
}

// ArtistDetails is an artist together with its shows partitioned into
// past and upcoming relative to the time of the request.
type ArtistDetails struct {
	Artist             Artist
	PastShows          []ShowSummary
	UpcomingShows      []ShowSummary
	PastShowsCount     int
	UpcomingShowsCount int
}

// SearchHit is a single artist match in a name search.
type SearchHit struct {
	ID               string
	Name             string
	NumUpcomingShows int
}

// SearchResult holds the outcome of an artist name search.
type SearchResult struct {
	Count int
	Data  []SearchHit
}
