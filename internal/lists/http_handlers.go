package lists

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers exposes the list manager over HTTP. The assignment endpoints are
// mounted under the contacts route group for compatibility with the existing
// dashboard, but their behavior belongs to the list manager.
type Handlers struct {
	Service *Service
}

type createListRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"teamId"`
}

func (h Handlers) CreateList(c *gin.Context) {
	var req createListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	l, err := h.Service.Create(c.Request.Context(), req.Name, req.TeamID)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "name and teamId are required"})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "List with this name already exists"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server Error", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"msg": "List created successfully", "list": l})
	}
}

func (h Handlers) FetchAllLists(c *gin.Context) {
	ls, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ls)
}

func (h Handlers) FetchSingleList(c *gin.Context) {
	l, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "List not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, l)
	}
}

func (h Handlers) FetchListsByTeam(c *gin.Context) {
	ls, err := h.Service.GetByTeam(c.Request.Context(), c.Query("teamId"))
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Team ID is required"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Lists fetched successfully for the team",
			"data":    ls,
		})
	}
}

type updateListRequest struct {
	Name string `json:"name"`
}

func (h Handlers) UpdateList(c *gin.Context) {
	var req updateListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	l, err := h.Service.Rename(c.Request.Context(), c.Param("id"), req.Name)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "List not found"})
	case errors.Is(err, ErrDuplicateName):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "List with this name already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "List updated successfully", "list": l})
	}
}

func (h Handlers) DeleteList(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "List not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "List and associated contacts deleted successfully"})
	}
}

func (h Handlers) EmptyList(c *gin.Context) {
	l, err := h.Service.Empty(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "List not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "All contacts in the list have been deleted", "list": l})
	}
}

type assignRequest struct {
	MemberID string `json:"memberId"`
	ListID   string `json:"listId"`
}

func (h Handlers) AssignContactsFromList(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	n, err := h.Service.Assign(c.Request.Context(), req.MemberID, req.ListID)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Member ID and List ID are required"})
	case errors.Is(err, ErrMemberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Member not found"})
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "List not found"})
	case errors.Is(err, ErrEmptyList):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No contacts found in the list"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Contacts assigned successfully", "assignedContacts": n})
	}
}

type unassignRequest struct {
	ListID   string `json:"listId"`
	MemberID string `json:"memberId"`
}

func (h Handlers) RemoveAssignmentFromList(c *gin.Context) {
	var req unassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	err := h.Service.Unassign(c.Request.Context(), req.ListID, req.MemberID)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "List ID and Member ID are required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Assignment cleared successfully"})
	}
}
