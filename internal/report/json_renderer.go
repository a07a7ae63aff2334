package report

import (
	"context"
	"encoding/json"
)

type jsonRenderer struct{}

func (r *jsonRenderer) Render(_ context.Context, data any) (*Result, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return &Result{
		Headers: map[string]string{"Content-Type": "application/json; charset=utf-8"},
		Report:  body,
	}, nil
}
