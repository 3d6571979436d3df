package v1

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ShowHandler defines the interface for handling show-related operations
type ShowHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
}

// showHandler struct holds the services
type showHandler struct {
	showService shows.ShowService
}

// NewShowHandler creates a new ShowHandler
func NewShowHandler(showService shows.ShowService) ShowHandler {
	return &showHandler{
		showService: showService,
	}
}

// Create books a new show for an artist at a venue
func (handler *showHandler) Create(ctx *gin.Context) {
	var request ShowRequest
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

	show, err := handler.showService.Create(ctx, request.ToDomain())
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("show could not be listed: %v", err.Error())
		errorResponse.Message = &errorMessage
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, ShowResponse{
		ID:        show.ID,
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime,
	})
}

// List fetches shows joined with artist and venue display fields
func (handler *showHandler) List(ctx *gin.Context) {
	query := shows.NewShowQuery()

	if artistID := ctx.Query("artist_id"); len(artistID) > 0 {
		query.ArtistID = artistID
	}
	if venueID := ctx.Query("venue_id"); len(venueID) > 0 {
		query.VenueID = venueID
	}
	if startsAfter := ctx.Query("startsAfter"); len(startsAfter) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, startsAfter)
		if err == nil {
			query.StartsAfter = parsedTime
		}
	}
	if startsBefore := ctx.Query("startsBefore"); len(startsBefore) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, startsBefore)
		if err == nil {
			query.StartsBefore = parsedTime
		}
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("validation failed: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	detailsList, err := handler.showService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not list shows: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	listResponse := []ShowResponse{}
	for _, details := range detailsList {
		listResponse = append(listResponse, ShowResponse{
			ID:              details.ID,
			VenueID:         details.VenueID,
			VenueName:       details.VenueName,
			ArtistID:        details.ArtistID,
			ArtistName:      details.ArtistName,
			ArtistImageLink: details.ArtistImageLink,
			StartTime:       details.StartTime,
		})
	}

	ctx.JSON(http.StatusOK, listResponse)
}
