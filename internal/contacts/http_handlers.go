package contacts

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handlers exposes contact CRUD and export over HTTP.
// Assignment endpoints live with the list manager; see internal/lists.
type Handlers struct {
	Service *Service
	Export  *ExportService
}

func (h Handlers) CreateContact(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid request body", "error": err.Error()})
		return
	}

	contact, err := h.Service.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "number and name are required"})
	case errors.Is(err, ErrDuplicateNumber):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Contact with this number already exists"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		c.JSON(http.StatusCreated, gin.H{"msg": "Contact created successfully", "contact": contact})
	}
}

func (h Handlers) FetchAllContacts(c *gin.Context) {
	cs, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (h Handlers) FetchAllListContacts(c *gin.Context) {
	cs, err := h.Service.GetByList(c.Request.Context(), c.Query("listId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cs)
}

func (h Handlers) ExportContactsByList(c *gin.Context) {
	filename, body, err := h.Export.ExportByList(c.Request.Context(), c.Param("id"))
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "No contacts found for this list"})
	case errors.Is(err, ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "List ID is required"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		writeCSV(c, filename, body)
	}
}

func (h Handlers) ExportAllContacts(c *gin.Context) {
	filename, body, err := h.Export.ExportAll(c.Request.Context())
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"msg": "No contacts found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	default:
		writeCSV(c, filename, body)
	}
}

func writeCSV(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", []byte(body))
}
