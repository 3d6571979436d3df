package v1

import (
	"github.com/deividmarreiro/fyyur/internal/domain/artists"
	"github.com/deividmarreiro/fyyur/internal/domain/shows"
	"github.com/deividmarreiro/fyyur/internal/domain/venues"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	venueService venues.VenueService,
	artistService artists.ArtistService,
	showService shows.ShowService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Venues Routes
	venueHandler := NewVenueHandler(venueService)
	v1.POST("/venues", venueHandler.Create)
	v1.GET("/venues", venueHandler.ListAreas)
	v1.GET("/venues/search", venueHandler.Search)
	v1.GET("/venues/:id", venueHandler.GetByID)
	v1.PUT("/venues/:id", venueHandler.UpdateByID)
	v1.DELETE("/venues/:id", venueHandler.DeleteByID)

	// Artists Routes
	artistHandler := NewArtistHandler(artistService)
	v1.POST("/artists", artistHandler.Create)
	v1.GET("/artists", artistHandler.List)
	v1.GET("/artists/search", artistHandler.Search)
	v1.GET("/artists/:id", artistHandler.GetByID)
	v1.PUT("/artists/:id", artistHandler.UpdateByID)

	// Shows Routes
	showHandler := NewShowHandler(showService)
	v1.POST("/shows", showHandler.Create)
	v1.GET("/shows", showHandler.List)
}
