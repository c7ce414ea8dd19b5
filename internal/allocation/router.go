package allocation

import (
	"github.com/gin-gonic/gin"
)

// SetupAllocationRoutes mounts the allocation endpoints under the shared
// /venues group so the public surface stays one resource tree.
func SetupAllocationRoutes(rg *gin.RouterGroup, controller *Controller) {
	venueGroup := rg.Group("/venues")
	{
		venueGroup.POST("/allocate", controller.AllocateVenue)
		venueGroup.GET("/:id/availability", controller.CheckAvailability)
		venueGroup.DELETE("/bookings/event/:eventId", controller.CancelBooking)
	}
}
