package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Triple is one parsed loss from the interpreter, before validation.
// Quantity stays a float64 here because the model sometimes answers
// "2.0"; the losses service coerces it.
type Triple struct {
	Product  string  `json:"product"`
	Quantity float64 `json:"quantity"`
	Size     *string `json:"size"`
}

// ErrInvalidOutput marks an interpreter answer that was not the JSON
// array we asked for. Callers recover by treating it as zero results.
var ErrInvalidOutput = errors.New("invalid LLM JSON output")

// Interpret runs the client on a transcript and decodes the answer. A
// syntactically broken answer is ErrInvalidOutput, never a partial list.
func Interpret(
	ctx context.Context,
	client Client,
	transcript string,
) ([]Triple, error) {

	rawJSON, err := client.Interpret(ctx, transcript)
	if err != nil {
		return nil, err
	}

	var triples []Triple
	if err := json.Unmarshal([]byte(rawJSON), &triples); err != nil {
		return nil, ErrInvalidOutput
	}

	return triples, nil
}
