package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the envelope for error messages.
type ErrorResponse struct {
	Message *string `json:"message,omitempty"`
}

// InfoResponse is the envelope for informational messages.
type InfoResponse struct {
	Message *string `json:"message,omitempty"`
}

func validateStruct(v any) error {
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

// VenueRequest is the payload for creating or updating a venue listing.
type VenueRequest struct {
	Name               string   `json:"name" validate:"required,min=1,max=255"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,min=1,max=50"`
	Address            string   `json:"address" validate:"required,min=1,max=120"`
	City               string   `json:"city" validate:"required,min=1,max=120"`
	State              string   `json:"state" validate:"required,min=1,max=120"`
	Phone              string   `json:"phone" validate:"required,min=1,max=120"`
	Website            string   `json:"website_link" validate:"omitempty,max=120"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=500"`
	ImageLink          string   `json:"image_link" validate:"omitempty,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,max=120"`
}

// Validate checks the venue request payload.
func (r *VenueRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request payload to a domain venue.
func (r *VenueRequest) ToDomain() *venues.Venue {
	return &venues.Venue{
		Name:               r.Name,
		Genres:             r.Genres,
		Address:            r.Address,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Website:            r.Website,
		SeekingTalent:      r.SeekingTalent,
		SeekingDescription: r.SeekingDescription,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
	}
}

// VenueResponse is the representation of a venue listing.
type VenueResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Genres             []string  `json:"genres"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website_link"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription string    `json:"seeking_description"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	CreatedAt          time.Time `json:"created_at"`
}

func newVenueResponse(v *venues.Venue) VenueResponse {
	return VenueResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Genres:             v.Genres,
		Address:            v.Address,
		City:               v.City,
		State:              v.State,
		Phone:              v.Phone,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		CreatedAt:          v.CreatedAt,
	}
}

// VenueShowResponse is a show entry on a venue page.
type VenueShowResponse struct {
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueDetailsResponse is a venue with its past and upcoming shows.
type VenueDetailsResponse struct {
	VenueResponse
	PastShows          []VenueShowResponse `json:"past_shows"`
	UpcomingShows      []VenueShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

func newVenueDetailsResponse(d *venues.VenueDetails) VenueDetailsResponse {
	response := VenueDetailsResponse{
		VenueResponse: newVenueResponse(&d.Venue),
		PastShows:     []VenueShowResponse{},
		UpcomingShows: []VenueShowResponse{},
	}
	for _, s := range d.PastShows {
		response.PastShows = append(response.PastShows, VenueShowResponse{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	for _, s := range d.UpcomingShows {
		response.UpcomingShows = append(response.UpcomingShows, VenueShowResponse{
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	response.PastShowsCount = d.PastShowsCount
	response.UpcomingShowsCount = d.UpcomingShowsCount
	return response
}

// AreaVenueResponse is a venue entry within an area listing.
type AreaVenueResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaResponse groups venues sharing a city and state.
type AreaResponse struct {
	City   string              `json:"city"`
	State  string              `json:"state"`
	Venues []AreaVenueResponse `json:"venues"`
}

// SearchHitResponse is a single match in a name search.
type SearchHitResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResponse holds the outcome of a name search.
type SearchResponse struct {
	Count int                 `json:"count"`
	Data  []SearchHitResponse `json:"data"`
}

// ArtistRequest is the payload for creating or updating an artist listing.
type ArtistRequest struct {
	Name               string   `json:"name" validate:"required,min=1,max=255"`
	Genres             []string `json:"genres" validate:"required,min=1,dive,min=1,max=50"`
	City               string   `json:"city" validate:"omitempty,max=120"`
	State              string   `json:"state" validate:"omitempty,max=120"`
	Phone              string   `json:"phone" validate:"omitempty,max=120"`
	Website            string   `json:"website_link" validate:"omitempty,max=120"`
	ImageLink          string   `json:"image_link" validate:"omitempty,max=500"`
	FacebookLink       string   `json:"facebook_link" validate:"omitempty,max=120"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description" validate:"omitempty,max=500"`
}

// Validate checks the artist request payload.
func (r *ArtistRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request payload to a domain artist.
func (r *ArtistRequest) ToDomain() *artists.Artist {
	return &artists.Artist{
		Name:               r.Name,
		Genres:             r.Genres,
		City:               r.City,
		State:              r.State,
		Phone:              r.Phone,
		Website:            r.Website,
		ImageLink:          r.ImageLink,
		FacebookLink:       r.FacebookLink,
		SeekingVenue:       r.SeekingVenue,
		SeekingDescription: r.SeekingDescription,
	}
}

// ArtistResponse is the representation of an artist listing.
type ArtistResponse struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Genres             []string  `json:"genres"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Website            string    `json:"website_link"`
	ImageLink          string    `json:"image_link"`
	FacebookLink       string    `json:"facebook_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription string    `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
}

func newArtistResponse(a *artists.Artist) ArtistResponse {
	return ArtistResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Genres:             a.Genres,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Website:            a.Website,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
		CreatedAt:          a.CreatedAt,
	}
}

// ArtistShowResponse is a show entry on an artist page.
type ArtistShowResponse struct {
	VenueID        string    `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ArtistDetailsResponse is an artist with its past and upcoming shows.
type ArtistDetailsResponse struct {
	ArtistResponse
	PastShows          []ArtistShowResponse `json:"past_shows"`
	UpcomingShows      []ArtistShowResponse `json:"upcoming_shows"`
	PastShowsCount     int                  `json:"past_shows_count"`
	UpcomingShowsCount int                  `json:"upcoming_shows_count"`
}

func newArtistDetailsResponse(d *artists.ArtistDetails) ArtistDetailsResponse {
	response := ArtistDetailsResponse{
		ArtistResponse: newArtistResponse(&d.Artist),
		PastShows:      []ArtistShowResponse{},
		UpcomingShows:  []ArtistShowResponse{},
	}
	for _, s := range d.PastShows {
		response.PastShows = append(response.PastShows, ArtistShowResponse{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		})
	}
	for _, s := range d.UpcomingShows {
		response.UpcomingShows = append(response.UpcomingShows, ArtistShowResponse{
			VenueID:        s.VenueID,
			VenueName:      s.VenueName,
			VenueImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		})
	}
	response.PastShowsCount = d.PastShowsCount
	response.UpcomingShowsCount = d.UpcomingShowsCount
	return response
}

// ShowRequest is the payload for booking a show.
type ShowRequest struct {
	ArtistID  string    `json:"artist_id" validate:"required,uuid4"`
	VenueID   string    `json:"venue_id" validate:"required,uuid4"`
	StartTime time.Time `json:"start_time" validate:"required"`
}

// Validate checks the show request payload.
func (r *ShowRequest) Validate() error {
	return validateStruct(r)
}

// ToDomain converts the request payload to a domain show.
func (r *ShowRequest) ToDomain() *shows.Show {
	return &shows.Show{
		ArtistID:  r.ArtistID,
		VenueID:   r.VenueID,
		StartTime: r.StartTime,
	}
}

// ShowResponse is the representation of a show joined with display fields.
type ShowResponse struct {
	ID              string    `json:"id"`
	VenueID         string    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        string    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}
