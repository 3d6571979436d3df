package venues

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Venue entity
type Venue struct {
	ID                 string    `validate:"required,uuid4"`
	Name               string    `validate:"required,min=1,max=255"`
	Genres             []string  `validate:"required,min=1,dive,min=1,max=50"`
	Address            string    `validate:"required,min=1,max=120"`
	City               string    `validate:"required,min=1,max=120"`
	State              string    `validate:"required,min=1,max=120"`
	Phone              string    `validate:"required,min=1,max=120"`
	Website            string    `validate:"omitempty,max=120"`
	SeekingTalent      bool
	SeekingDescription string    `validate:"omitempty,max=500"`
	ImageLink          string    `validate:"omitempty,max=500"`
	FacebookLink       string    `validate:"omitempty,max=120"`
	CreatedAt          time.Time `validate:"required"`
}

// Validate for validating Venue struct
func (v *Venue) Validate() error {
	validate := validator.New()

	err := validate.Struct(v)
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

// VenueQuery holds filter, sorting and pagination options for venue listings
type VenueQuery struct {
	Name      string `validate:"omitempty,max=255"`
	City      string `validate:"omitempty,max=120"`
	State     string `validate:"omitempty,max=120"`
	SortBy    string `validate:"omitempty,oneof=name city state created_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
	Limit     int    `validate:"omitempty,min=0,max=500"`
	Offset    int    `validate:"omitempty,min=0"`
}

// NewVenueQuery creates a VenueQuery with default pagination applied
func NewVenueQuery() *VenueQuery {
	return &VenueQuery{
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating VenueQuery struct
func (q *VenueQuery) Validate() error {
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

// ShowSummary is a denormalized view of a show as seen from a venue page.
type ShowSummary struct {
	ArtistID        string
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// VenueDetails is a venue together with its shows partitioned into
// past and upcoming relative to the time of the request.
type VenueDetails struct {
	Venue              Venue
	PastShows          []ShowSummary
	UpcomingShows      []ShowSummary
	PastShowsCount     int
	UpcomingShowsCount int
}

// AreaVenue is a venue entry within a city/state area listing.
type AreaVenue struct {
	ID               string
	Name             string
	NumUpcomingShows int
}

// Area groups venues sharing a city and state.
type Area struct {
	City   string
	State  string
	Venues []AreaVenue
}

// SearchHit is a single venue match in a name search.
type SearchHit struct {
	ID               string
	Name             string
	NumUpcomingShows int
}

// SearchResult holds the outcome of a venue name search.
type SearchResult struct {
	Count int
	Data  []SearchHit
}
