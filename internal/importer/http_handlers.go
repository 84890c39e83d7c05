package importer

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"dialdesk/internal/config"
	"dialdesk/pkg/logger"
)

var allowedMIMETypes = map[string]bool{
	"text/csv": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

type Handlers struct {
	Service *Service
	Upload  config.UploadConfig
}

// UploadContacts accepts a multipart csv/xlsx upload, stages it on disk,
// imports it into the target list and removes the staged file.
func (h Handlers) UploadContacts(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "No file uploaded"})
		return
	}
	if file.Size > h.Upload.MaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "File too large"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid file type. Only CSV and Excel files are allowed."})
		return
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && !allowedMIMETypes[ct] {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid file type. Only CSV and Excel files are allowed."})
		return
	}

	listID := c.PostForm("listId")
	if listID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "List ID is required"})
		return
	}
	region := c.PostForm("countryCode")

	staged := filepath.Join(h.Upload.Dir, fmt.Sprintf("file-%d%s", time.Now().UnixNano(), ext))
	if err := c.SaveUploadedFile(file, staged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
		return
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			logger.From(c.Request.Context()).Warn("staged upload not removed", "path", staged, "err", err)
		}
	}()

	res, err := h.Service.Import(c.Request.Context(), staged, listID, region)
	switch {
	case errors.Is(err, ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Invalid file type. Only CSV and Excel files are allowed."})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Server error", "error": err.Error()})
	case res.AddedCount == 0:
		c.JSON(http.StatusOK, gin.H{
			"msg":               "No new contacts to add (all were duplicates)",
			"addedCount":        0,
			"duplicatesSkipped": res.DuplicatesSkipped,
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"msg":               fmt.Sprintf("Successfully added %d contacts", res.AddedCount),
			"addedCount":        res.AddedCount,
			"duplicatesSkipped": res.DuplicatesSkipped,
		})
	}
}
