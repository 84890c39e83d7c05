package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Service *Service
}

type markRequest struct {
	MemberID string `json:"memberId"`
}

func (h Handlers) UpdateMemberAttendance(c *gin.Context) {
	var req markRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MemberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Member ID is required"})
		return
	}

	v, err := h.Service.MarkPresent(c.Request.Context(), req.MemberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update attendance", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance updated to present for today", "data": v})
}

func (h Handlers) GetMemberAttendance(c *gin.Context) {
	vs, err := h.Service.GetByMember(c.Request.Context(), c.Query("memberId"))
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Member ID is required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch member attendance", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Member attendance records fetched successfully", "data": vs})
	}
}
