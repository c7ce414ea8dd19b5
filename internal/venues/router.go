package venues

import "github.com/gin-gonic/gin"

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venues")
	{
		venues.POST("", controller.CreateVenue)          // POST /api/v1/venues
		venues.GET("", controller.GetVenues)             // GET /api/v1/venues
		venues.GET("/:id", controller.GetVenue)          // GET /api/v1/venues/:id
		venues.PUT("/:id", controller.UpdateVenue)       // PUT /api/v1/venues/:id
		venues.DELETE("/:id", controller.DeleteVenue)    // DELETE /api/v1/venues/:id
		venues.POST("/available", controller.FindAvailableVenues) // POST /api/v1/venues/available

		venues.GET("/:id/schedule", controller.GetVenueSchedule) // GET /api/v1/venues/:id/schedule
	}
}
