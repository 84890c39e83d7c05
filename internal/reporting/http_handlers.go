package reporting

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Service *Service
}

// CallSummary serves GET /callSummary?teamId=&from=&to= with RFC 3339
// bounds. A missing range defaults to the last 30 days.
func (h Handlers) CallSummary(c *gin.Context) {
	teamID := c.Query("teamId")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Team ID is required"})
		return
	}

	now := time.Now().UTC()
	from, to := now.AddDate(0, 0, -30), now
	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "from must be RFC 3339"})
			return
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "to must be RFC 3339"})
			return
		}
		to = parsed
	}

	summary, err := h.Service.CallsSummary(c.Request.Context(), CallsSummaryRequest{
		TeamID: teamID,
		Range:  TimeRange{From: from, To: to},
	})
	switch {
	case errors.Is(err, ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid report range"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build report", "error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Call summary built successfully", "data": summary})
	}
}
