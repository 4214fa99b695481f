package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"train-induction-ai/middleware"
	"train-induction-ai/models"
)

// GeneratePlan forwards trains, rules and weights to the model and relays its JSON reply
func (h *Handler) GeneratePlan(c *gin.Context) {
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		respondError(c, http.StatusBadRequest, "Missing data")
		return
	}

	req := models.PlanRequestFromMap(body)
	rid := middleware.GetRequestID(c)
	h.log.Info("Plan request", "request_id", rid,
		"trains_bytes", len(req.Trains), "rules_bytes", len(req.Rules), "weights_bytes", len(req.Weights))

	plan, err := h.planner.GeneratePlan(c.Request.Context(), req)
	if err != nil {
		h.log.Error("Error generating plan", "request_id", rid, "error", err)
		respondServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", plan)
}
