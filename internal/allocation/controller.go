package allocation

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"venuely/internal/shared/utils/response"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// AllocateVenue handles POST /venues/allocate. It runs the full allocation
// pipeline for one event. A request that finds no venue still returns 200
// with success=false: "nothing fits" is a valid answer, not a server fault.
func (c *Controller) AllocateVenue(ctx *gin.Context) {
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request payload", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	result, err := c.service.Allocate(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to allocate venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, result.Message, result, nil)
}

// CheckAvailability handles GET /venues/:id/availability with start_time and
// end_time query parameters in RFC3339.
func (c *Controller) CheckAvailability(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid venue ID", nil, err.Error())
		return
	}

	startStr := ctx.Query("start_time")
	endStr := ctx.Query("end_time")
	if startStr == "" || endStr == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "start_time and end_time query parameters are required", nil, nil)
		return
	}

	start, err := time.Parse(time.RFC3339, startStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid start_time, expected RFC3339", nil, err.Error())
		return
	}
	end, err := time.Parse(time.RFC3339, endStr)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid end_time, expected RFC3339", nil, err.Error())
		return
	}

	result, err := c.service.CheckAvailability(ctx.Request.Context(), venueID, AvailabilityQuery{StartTime: start, EndTime: end})
	if err != nil {
		if err.Error() == "venue not found" {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, err.Error())
			return
		}
		if err.Error() == "end time must be after start time" {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to check availability", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Availability checked successfully", result, nil)
}

// CancelBooking handles DELETE /venues/bookings/event/:eventId. It releases
// every booking the event holds.
func (c *Controller) CancelBooking(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid event ID", nil, err.Error())
		return
	}

	cancelled, err := c.service.CancelBooking(ctx.Request.Context(), eventID)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to cancel booking", nil, err.Error())
		return
	}
	if !cancelled {
		response.RespondJSON(ctx, "error", http.StatusNotFound, "No bookings found for event", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Booking cancelled successfully", nil, nil)
}
