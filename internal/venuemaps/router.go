package venuemaps

import (
	"github.com/gin-gonic/gin"
)

func SetupVenueMapRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - venue maps back the seat picker on the event page
	router.GET("/events/:eventId/venue-map", controller.GetEventVenueMap) // GET /api/v1/events/:eventId/venue-map
	router.GET("/venues/:venueName/map", controller.GetVenueMap)          // GET /api/v1/venues/:venueName/map
}
