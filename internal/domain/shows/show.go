// Package shows defines the show domain entities, query types and the
// service and repository contracts for show-related operations.
package shows

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Show entity binding an artist to a venue at a start time.
type Show struct {
	ID        string    `validate:"required,uuid4"`
	ArtistID  string    `validate:"required,uuid4"`
	VenueID   string    `validate:"required,uuid4"`
	StartTime time.Time `validate:"required"`
	CreatedAt time.Time `validate:"required"`
}

// Validate for validating Show struct
func (s *Show) Validate() error {
	validate := validator.New()

	err := validate.Struct(s)
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

// ShowQuery holds filter, sorting and pagination options for show listings
type ShowQuery struct {
	ArtistID     string `validate:"omitempty,uuid4"`
	VenueID      string `validate:"omitempty,uuid4"`
	StartsAfter  time.Time
	StartsBefore time.Time
	SortBy       string `validate:"omitempty,oneof=start_time created_at"`
	SortOrder    string `validate:"omitempty,oneof=asc desc"`
	Limit        int    `validate:"omitempty,min=0,max=500"`
	Offset       int    `validate:"omitempty,min=0"`
}

// NewShowQuery creates a ShowQuery with default sorting and pagination applied
func NewShowQuery() *ShowQuery {
	return &ShowQuery{
		SortBy: "start_time",
		Limit:  100,
		Offset: 0,
	}
}

// Validate for validating ShowQuery struct
func (q *ShowQuery) Validate() error {
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

// ShowDetails is a show joined with the artist and venue display fields.
type ShowDetails struct {
	ID              string
	VenueID         string
	VenueName       string
	ArtistID        string
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}
