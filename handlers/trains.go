package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"train-induction-ai/config"
	"train-induction-ai/fleet"
	"train-induction-ai/middleware"
)

// GetTrainsets returns every trainset record
func (h *Handler) GetTrainsets(c *gin.Context) {
	trains, err := h.trainsets.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("Error getting trainsets", "request_id", middleware.GetRequestID(c), "error", err)
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, trains)
}

// ExportTrainsetsCSV returns every trainset record as a CSV download
func (h *Handler) ExportTrainsetsCSV(c *gin.Context) {
	trains, err := h.trainsets.ListAll(c.Request.Context())
	if err != nil {
		h.log.Error("Error exporting trainsets", "request_id", middleware.GetRequestID(c), "error", err)
		respondServiceError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := fleet.WriteCSV(&buf, trains); err != nil {
		h.log.Error("Error encoding trainsets csv", "request_id", middleware.GetRequestID(c), "error", err)
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="trainsets.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetDefaultRules returns the stock scheduling rules
func (h *Handler) GetDefaultRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rules": config.DefaultRules()})
}
