package members

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Service *Service
	Export  *ExportService
}

func (h Handlers) AddMember(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Team must be an array or string", "error": err.Error()})
		return
	}

	m, err := h.Service.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Member with this email already exists"})
	case errors.Is(err, ErrDuplicateLogin):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Member with this userId already exists"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "name, email, userId, password, role, team and phone are required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"msg": "Member created successfully", "member": m})
	}
}

func (h Handlers) FetchAllMembers(c *gin.Context) {
	views, err := h.Service.GetAll(c.Request.Context())
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "No members found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, views)
	}
}

type changePasswordRequest struct {
	LoginID     string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

func (h Handlers) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	err := h.Service.ChangePassword(c.Request.Context(), req.LoginID, req.NewPassword)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Member not found"})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "userId and newPassword are required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Password updated successfully"})
	}
}

func (h Handlers) DeleteMember(c *gin.Context) {
	err := h.Service.Delete(c.Request.Context(), c.Param("userId"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Member not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Member deleted successfully"})
	}
}

func (h Handlers) DeleteAllMembers(c *gin.Context) {
	n, err := h.Service.DeleteAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"msg": "All members deleted successfully", "deletedCount": n})
}

func (h Handlers) UpdateMember(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	m, err := h.Service.UpdateDetails(c.Request.Context(), c.Param("memberId"), req)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Member not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"msg": "Member updated successfully", "member": m})
	}
}

func (h Handlers) ExportMembers(c *gin.Context) {
	filename, data, err := h.Export.ExportAll(c.Request.Context())
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "No members found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", []byte(data))
	}
}

func (h Handlers) FetchListsByMember(c *gin.Context) {
	ls, err := h.Service.GetListsByMember(c.Request.Context(), c.Param("memberId"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "Member not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, ls)
	}
}

func (h Handlers) FetchAllMembersInTeam(c *gin.Context) {
	ms, err := h.Service.GetByTeam(c.Request.Context(), c.Query("teamId"))
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Team ID is required"})
	case errors.Is(err, ErrTeamNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch team members", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Members fetched successfully for the team", "data": ms})
	}
}

type loginStatusRequest struct {
	MemberID   string `json:"memberId"`
	IsLoggedIn *bool  `json:"isLoggedIn"`
}

func (h Handlers) UpdateLoginStatus(c *gin.Context) {
	var req loginStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" || req.IsLoggedIn == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input data"})
		return
	}

	m, err := h.Service.SetLoginStatus(c.Request.Context(), req.MemberID, *req.IsLoggedIn)
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Member not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update login status", "error": err.Error()})
	default:
		status := "logged out"
		if *req.IsLoggedIn {
			status = "logged in"
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Member login status updated to " + status,
			"data":    m,
		})
	}
}
