package teams

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Service *Service
}

type createTeamRequest struct {
	Name   string `json:"name"`
	UserID string `json:"userId"`
}

func (h Handlers) AddTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	t, err := h.Service.Create(c.Request.Context(), req.Name, req.UserID)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Name and userId are required"})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Team name already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"msg": "Team created successfully", "team": t})
	}
}

func (h Handlers) FetchTeamsByUser(c *gin.Context) {
	ts, err := h.Service.GetByAccount(c.Request.Context(), c.Query("userId"))
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "User ID is required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Teams fetched successfully for the user", "data": ts})
	}
}

func (h Handlers) DeleteTeam(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("teamId"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Team deleted successfully"})
	}
}

type editTeamRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

func (h Handlers) EditTeam(c *gin.Context) {
	var req editTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	t, err := h.Service.Rename(c.Request.Context(), req.TeamID, req.Name)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Team name is required"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Team not found"})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Team name already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Team updated successfully", "team": t})
	}
}
