package handlers

import (
	"context"
	"encoding/json"

	"train-induction-ai/logger"
	"train-induction-ai/models"
)

// TrainsetLister reads the full trainset table
type TrainsetLister interface {
	ListAll(ctx context.Context) ([]models.Trainset, error)
}

// PlanGenerator forwards a plan request to the model
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req models.PlanRequest) (json.RawMessage, error)
}

// Handler serves the HTTP API
type Handler struct {
	trainsets TrainsetLister
	planner   PlanGenerator
	log       *logger.Logger
}

// New creates a Handler
func New(trainsets TrainsetLister, planner PlanGenerator, log *logger.Logger) *Handler {
	return &Handler{trainsets: trainsets, planner: planner, log: log}
}
