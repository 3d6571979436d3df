//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter() (*gin.Engine, *MockVenueService, *MockArtistService, *MockShowService) {
	gin.SetMode(gin.TestMode)

	mockVenueService := new(MockVenueService)
	mockArtistService := new(MockArtistService)
	mockShowService := new(MockShowService)

	router := gin.New()
	SetupRoutes(router, mockVenueService, mockArtistService, mockShowService)

	return router, mockVenueService, mockArtistService, mockShowService
}

func TestSetupRoutes_VenueSearchNotShadowedByParam(t *testing.T) {
	router, mockVenueService, _, _ := setupTestRouter()

	result := &venues.SearchResult{Count: 0, Data: []venues.SearchHit{}}
	mockVenueService.On("Search", mock.Anything, "Hop").Return(result, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", BasePath+"/venues/search?term=Hop", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockVenueService.AssertExpectations(t)
}

func TestSetupRoutes_UnknownRoute_NotFound(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", BasePath+"/bands", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_ArtistDeleteNotRegistered(t *testing.T) {
	router, _, _, _ := setupTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", BasePath+"/artists/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetupRoutes_VenueGetByID_RoutesToHandler(t *testing.T) {
	router, mockVenueService, _, _ := setupTestRouter()

	details := &venues.VenueDetails{
		Venue:         venues.Venue{ID: "123", Name: "The Musical Hop"},
		PastShows:     []venues.ShowSummary{},
		UpcomingShows: []venues.ShowSummary{},
	}
	mockVenueService.On("GetByID", mock.Anything, "123").Return(details, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", BasePath+"/venues/123", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The Musical Hop")
	mockVenueService.AssertExpectations(t)
}
