package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/gin-gonic/gin"
)

// VenueHandler defines the interface for handling venue-related operations
type VenueHandler interface {
	Create(ctx *gin.Context)
	ListAreas(ctx *gin.Context)
	Search(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// venueHandler struct holds the services
type venueHandler struct {
	venueService venues.VenueService
}

// NewVenueHandler creates a new VenueHandler
func NewVenueHandler(venueService venues.VenueService) VenueHandler {
	return &venueHandler{
		venueService: venueService,
	}
}

// Create registers a new venue listing
func (handler *venueHandler) Create(ctx *gin.Context) {
	var request VenueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "invalid request body"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("validation failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	venue, err := handler.venueService.Create(ctx, request.ToDomain())
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("venue %s could not be listed: %v", request.Name, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newVenueResponse(venue))
}

// ListAreas fetches all venues grouped by city and state
func (handler *venueHandler) ListAreas(ctx *gin.Context) {
	areas, err := handler.venueService.ListAreas(ctx)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not list venues: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	listResponse := []AreaResponse{}
	for _, area := range areas {
		areaResponse := AreaResponse{
			City:   area.City,
			State:  area.State,
			Venues: []AreaVenueResponse{},
		}
		for _, venue := range area.Venues {
			areaResponse.Venues = append(areaResponse.Venues, AreaVenueResponse{
				ID:               venue.ID,
				Name:             venue.Name,
				NumUpcomingShows: venue.NumUpcomingShows,
			})
		}
		listResponse = append(listResponse, areaResponse)
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Search fetches venues whose name contains the search term
func (handler *venueHandler) Search(ctx *gin.Context) {
	term := ctx.Query("term")
	if term == "" {
		var errorResponse ErrorResponse
		errorMessage := "missing search term"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.venueService.Search(ctx, term)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("venue search failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	searchResponse := SearchResponse{
		Count: result.Count,
		Data:  []SearchHitResponse{},
	}
	for _, hit := range result.Data {
		searchResponse.Data = append(searchResponse.Data, SearchHitResponse{
			ID:               hit.ID,
			Name:             hit.Name,
			NumUpcomingShows: hit.NumUpcomingShows,
		})
	}

	ctx.JSON(http.StatusOK, searchResponse)
}

// GetByID fetches a venue by ID with its past and upcoming shows
func (handler *venueHandler) GetByID(ctx *gin.Context) {
	venueID := ctx.Param("id")

	details, err := handler.venueService.GetByID(ctx, venueID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("venue with id %s not found", venueID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newVenueDetailsResponse(details))
}

// UpdateByID updates a venue by ID
func (handler *venueHandler) UpdateByID(ctx *gin.Context) {
	venueID := ctx.Param("id")

	var request VenueRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorMessage := "invalid request body"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("validation failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	venue := request.ToDomain()
	venue.ID = venueID

	updated, err := handler.venueService.UpdateByID(ctx, venue)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("venue %s could not be edited: %v", request.Name, err.Error())
		errorResponse.Message = &errorMessage
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newVenueResponse(updated))
}

// DeleteByID deletes a venue by ID
func (handler *venueHandler) DeleteByID(ctx *gin.Context) {
	venueID := ctx.Param("id")

	if err := handler.venueService.DeleteByID(ctx, venueID); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("venue with id %s not found", venueID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoMessage := fmt.Sprintf("deleted venue with id %s", venueID)
	infoResponse.Message = &infoMessage
	ctx.JSON(http.StatusNoContent, infoResponse)
}
