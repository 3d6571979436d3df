package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ArtistHandler defines the interface for handling artist-related operations
type ArtistHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	Search(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
}

// artistHandler struct holds the services
type artistHandler struct {
	artistService artists.ArtistService
}

// NewArtistHandler creates a new ArtistHandler
func NewArtistHandler(artistService artists.ArtistService) ArtistHandler {
	return &artistHandler{
		artistService: artistService,
	}
}

// Create registers a new artist listing
func (handler *artistHandler) Create(ctx *gin.Context) {
	var request ArtistRequest
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

	artist, err := handler.artistService.Create(ctx, request.ToDomain())
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("artist %s could not be listed: %v", request.Name, err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusCreated, newArtistResponse(artist))
}

// List fetches artists optionally with query parameters
func (handler *artistHandler) List(ctx *gin.Context) {
	query := artists.NewArtistQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}
	if city := ctx.Query("city"); len(city) > 0 {
		query.City = city
	}
	if state := ctx.Query("state"); len(state) > 0 {
		query.State = state
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
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

	artistList, err := handler.artistService.List(ctx, query)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("could not list artists: %v", err.Error())
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	listResponse := []ArtistResponse{}
	for _, artist := range artistList {
		listResponse = append(listResponse, newArtistResponse(artist))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// Search fetches artists whose name contains the search term
func (handler *artistHandler) Search(ctx *gin.Context) {
	term := ctx.Query("term")
	if term == "" {
		var errorResponse ErrorResponse
		errorMessage := "missing search term"
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	result, err := handler.artistService.Search(ctx, term)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("artist search failed: %v", err.Error())
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

// GetByID fetches an artist by ID with its past and upcoming shows
func (handler *artistHandler) GetByID(ctx *gin.Context) {
	artistID := ctx.Param("id")

	details, err := handler.artistService.GetByID(ctx, artistID)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("artist with id %s not found", artistID)
		errorResponse.Message = &errorMessage
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newArtistDetailsResponse(details))
}

// UpdateByID updates an artist by ID
func (handler *artistHandler) UpdateByID(ctx *gin.Context) {
	artistID := ctx.Param("id")

	var request ArtistRequest
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

	artist := request.ToDomain()
	artist.ID = artistID

	updated, err := handler.artistService.UpdateByID(ctx, artist)
	if err != nil {
		var errorResponse ErrorResponse
		errorMessage := fmt.Sprintf("artist %s could not be edited: %v", request.Name, err.Error())
		errorResponse.Message = &errorMessage
		if strings.Contains(err.Error(), "not found") {
			ctx.JSON(http.StatusNotFound, errorResponse)
			return
		}
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newArtistResponse(updated))
}
