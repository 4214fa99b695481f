package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"train-induction-ai/logger"
	"train-induction-ai/models"
)

// ModelClient sends a free-text prompt to a generative model and returns its text reply
type ModelClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// PlanService forwards induction plan requests to the model
type PlanService struct {
	client  ModelClient
	log     *logger.Logger
	timeout time.Duration
}

// NewPlanService creates a plan service. A zero timeout leaves the
// caller's context as the only bound on the model call.
func NewPlanService(client ModelClient, log *logger.Logger, timeout time.Duration) *PlanService {
	return &PlanService{client: client, log: log, timeout: timeout}
}

// GeneratePlan builds the prompt from req, calls the model once and returns
// its reply if it is valid JSON. The reply is not checked against any plan shape.
func (s *PlanService) GeneratePlan(ctx context.Context, req models.PlanRequest) (json.RawMessage, error) {
	if missing := missingPlanFields(req); len(missing) > 0 {
		return nil, &MissingInputError{Fields: missing}
	}

	prompt := BuildPlanPrompt(req)
	s.log.Debug("Plan prompt built", "prompt_bytes", len(prompt))

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	reply, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		s.log.Error("Model call failed", "error", err, "elapsed", time.Since(start))
		return nil, &UpstreamError{Err: err}
	}

	plan, err := parseModelReply(reply)
	if err != nil {
		s.log.Warn("Model reply rejected", "error", err, "reply_bytes", len(reply))
		return nil, &UpstreamError{Err: err}
	}

	s.log.Info("Plan generated", "elapsed", time.Since(start), "reply_bytes", len(plan))
	return plan, nil
}

func missingPlanFields(req models.PlanRequest) []string {
	var missing []string
	if req.Trains == nil {
		missing = append(missing, "trains")
	}
	if req.Rules == nil {
		missing = append(missing, "rules")
	}
	if req.Weights == nil {
		missing = append(missing, "weights")
	}
	return missing
}

// BuildPlanPrompt renders the scheduling instruction for the model
func BuildPlanPrompt(req models.PlanRequest) string {
	return fmt.Sprintf(`
You are an expert in metro train scheduling. You receive the current trainset data,
the scheduling rules and the weights used to score how fit each train is for service.
Produce the nightly induction plan that follows from this input.
Respond with JSON only, without prose or markdown.
---
Trains: %s
Rules: %s
Weights: %s
`, compactJSON(req.Trains), compactJSON(req.Rules), compactJSON(req.Weights))
}

// compactJSON strips insignificant whitespace; input that is not JSON is used as-is
func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// parseModelReply accepts the reply only if, after trimming surrounding
// whitespace, it is a single valid JSON document.
func parseModelReply(reply string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(reply)
	if trimmed == "" {
		return nil, errors.New("model returned an empty reply")
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, errors.New("model reply is not valid JSON")
	}
	return json.RawMessage(trimmed), nil
}
