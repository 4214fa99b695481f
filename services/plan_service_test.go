package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"train-induction-ai/logger"
	"train-induction-ai/models"
)

type stubModel struct {
	reply   string
	err     error
	calls   int
	prompts []string
	block   bool
}

func (s *stubModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return s.reply, s.err
}

func fullRequest() models.PlanRequest {
	return models.PlanRequest{
		Trains:  json.RawMessage(`[{"id": 1, "healthScore": 80}]`),
		Rules:   json.RawMessage(`"keep expired certificates out of service"`),
		Weights: json.RawMessage(`{"mileage": 5}`),
	}
}

func TestGeneratePlanMissingInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.PlanRequest)
		missing []string
	}{
		{"no trains", func(r *models.PlanRequest) { r.Trains = nil }, []string{"trains"}},
		{"no rules", func(r *models.PlanRequest) { r.Rules = nil }, []string{"rules"}},
		{"no weights", func(r *models.PlanRequest) { r.Weights = nil }, []string{"weights"}},
		{"nothing", func(r *models.PlanRequest) { *r = models.PlanRequest{} }, []string{"trains", "rules", "weights"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := &stubModel{reply: `{}`}
			svc := NewPlanService(model, logger.NewNop(), 0)

			req := fullRequest()
			tt.mutate(&req)

			plan, err := svc.GeneratePlan(context.Background(), req)
			assert.Nil(t, plan)
			require.Error(t, err)
			assert.True(t, IsMissingInput(err))
			assert.False(t, IsUpstream(err))

			var mi *MissingInputError
			require.True(t, errors.As(err, &mi))
			assert.Equal(t, tt.missing, mi.Fields)
			assert.Equal(t, 0, model.calls, "model must not be called")
		})
	}
}

func TestGeneratePlanNullCountsAsPresent(t *testing.T) {
	model := &stubModel{reply: `{"ok": true}`}
	svc := NewPlanService(model, logger.NewNop(), 0)

	req := fullRequest()
	req.Rules = json.RawMessage("null")

	_, err := svc.GeneratePlan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, model.calls)
}

func TestGeneratePlanSuccess(t *testing.T) {
	model := &stubModel{reply: "\n  {\"revenueService\": [{\"trainId\": \"1\"}], \"standby\": [], \"maintenance\": []}\n"}
	svc := NewPlanService(model, logger.NewNop(), time.Second)

	plan, err := svc.GeneratePlan(context.Background(), fullRequest())
	require.NoError(t, err)
	assert.JSONEq(t, `{"revenueService": [{"trainId": "1"}], "standby": [], "maintenance": []}`, string(plan))
	assert.Equal(t, 1, model.calls)

	prompt := model.prompts[0]
	assert.Contains(t, prompt, `Trains: [{"id":1,"healthScore":80}]`)
	assert.Contains(t, prompt, `Rules: "keep expired certificates out of service"`)
	assert.Contains(t, prompt, `Weights: {"mileage":5}`)
	assert.Contains(t, prompt, "JSON only")
}

func TestGeneratePlanReturnsAnyJSONVerbatim(t *testing.T) {
	model := &stubModel{reply: `[1, 2, 3]`}
	svc := NewPlanService(model, logger.NewNop(), 0)

	plan, err := svc.GeneratePlan(context.Background(), fullRequest())
	require.NoError(t, err)
	assert.Equal(t, `[1, 2, 3]`, string(plan))
}

func TestGeneratePlanInvalidReply(t *testing.T) {
	for _, reply := range []string{
		"Here is your plan: {}",
		"```json\n{}\n```",
		"",
		"   ",
		`{"unterminated": `,
	} {
		model := &stubModel{reply: reply}
		svc := NewPlanService(model, logger.NewNop(), 0)

		plan, err := svc.GeneratePlan(context.Background(), fullRequest())
		assert.Nil(t, plan)
		assert.True(t, IsUpstream(err), "reply %q", reply)
		assert.Equal(t, 1, model.calls, "no retry expected")
	}
}

func TestGeneratePlanUpstreamFailure(t *testing.T) {
	cause := errors.New("quota exceeded")
	model := &stubModel{err: cause}
	svc := NewPlanService(model, logger.NewNop(), 0)

	_, err := svc.GeneratePlan(context.Background(), fullRequest())
	require.Error(t, err)
	assert.True(t, IsUpstream(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "model API error: quota exceeded", err.Error())
	assert.Equal(t, 1, model.calls)
}

func TestGeneratePlanTimeout(t *testing.T) {
	model := &stubModel{block: true}
	svc := NewPlanService(model, logger.NewNop(), 10*time.Millisecond)

	_, err := svc.GeneratePlan(context.Background(), fullRequest())
	assert.True(t, IsUpstream(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "missing data: trains, weights", (&MissingInputError{Fields: []string{"trains", "weights"}}).Error())
	assert.Equal(t, "missing data", (&MissingInputError{}).Error())
	assert.Equal(t, "model API error", (&UpstreamError{}).Error())
}
