package calls

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Service *Service
}

func (h Handlers) StoreCallResponse(c *gin.Context) {
	var req StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body", "error": err.Error()})
		return
	}

	cr, err := h.Service.Store(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required call response fields"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store call response", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Call response stored successfully", "data": cr})
	}
}

func (h Handlers) FetchAllCallResponses(c *gin.Context) {
	crs, err := h.Service.GetByTeam(c.Request.Context(), c.Query("teamId"))
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Team ID is required"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch call responses", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Call responses fetched successfully for the team",
			"data":    crs,
		})
	}
}
