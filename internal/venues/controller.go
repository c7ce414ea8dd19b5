package venues

import (
	"net/http"
	"time"

	"venuely/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to create venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created successfully", venue, nil)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	venue, err := c.service.GetVenueByID(ctx.Request.Context(), id)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "venue not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

func (c *Controller) GetVenues(ctx *gin.Context) {
	var filters VenueFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	venues, err := c.service.GetVenues(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list venues", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", venues, nil)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), id, req)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "venue not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to update venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated successfully", venue, nil)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	if err := c.service.DeleteVenue(ctx.Request.Context(), id); err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "venue not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to delete venue", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue deleted successfully", nil, nil)
}

func (c *Controller) FindAvailableVenues(ctx *gin.Context) {
	var req AvailabilitySearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venues, err := c.service.FindAvailableVenues(ctx.Request.Context(), req)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search venues", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Available venues retrieved successfully", venues, nil)
}

func (c *Controller) GetVenueSchedule(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Venue ID is required", nil, "missing venue ID")
		return
	}

	var query ScheduleQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	var from, to *time.Time
	if query.Start != "" && query.End != "" {
		start, err := time.Parse(time.RFC3339, query.Start)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid start time", nil, err.Error())
			return
		}
		end, err := time.Parse(time.RFC3339, query.End)
		if err != nil {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid end time", nil, err.Error())
			return
		}
		from, to = &start, &end
	}

	schedule, err := c.service.GetVenueSchedule(ctx.Request.Context(), id, from, to)
	if err != nil {
		statusCode := http.StatusInternalServerError
		if err.Error() == "venue not found" {
			statusCode = http.StatusNotFound
		}
		response.RespondJSON(ctx, "error", statusCode, "Failed to get venue schedule", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue schedule retrieved successfully", schedule, nil)
}
