package models

import "encoding/json"

// PlanRequest is the bundle forwarded to the model.
// A nil field means the key was absent from the request body.
type PlanRequest struct {
	Trains  json.RawMessage `json:"trains"`
	Rules   json.RawMessage `json:"rules"`
	Weights json.RawMessage `json:"weights"`
}

// PlanRequestFromMap builds a PlanRequest from a decoded JSON object,
// keeping explicit nulls as present values.
func PlanRequestFromMap(m map[string]json.RawMessage) PlanRequest {
	pick := func(key string) json.RawMessage {
		v, ok := m[key]
		if !ok {
			return nil
		}
		if v == nil {
			return json.RawMessage("null")
		}
		return v
	}
	return PlanRequest{
		Trains:  pick("trains"),
		Rules:   pick("rules"),
		Weights: pick("weights"),
	}
}

// ErrorResponse is the JSON error body returned by the API
type ErrorResponse struct {
	Error string `json:"error"`
}
