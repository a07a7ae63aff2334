package apperrors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/hospital_billing_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKindAndStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus int
	}{
		{"wrapped validation", fmt.Errorf("%w: sale has no items", apperrors.ErrValidation), "ValidationError", http.StatusBadRequest},
		{"not found constructor", apperrors.NewNotFoundError("cash payment not found"), "NotFoundError", http.StatusNotFound},
		{"conflict constructor", apperrors.NewConflictError("price list in use"), "ConflictError", http.StatusConflict},
		{"duplicate maps to conflict", fmt.Errorf("%w: rate exists", apperrors.ErrDuplicate), "ConflictError", http.StatusConflict},
		{"dependency with cause", apperrors.NewDependencyError("patient lookup failed", context.DeadlineExceeded), "DependencyError", http.StatusFailedDependency},
		{"dependency wins over cause", apperrors.NewDependencyError("patient lookup failed", apperrors.ErrNotFound), "DependencyError", http.StatusFailedDependency},
		{"plain error", errors.New("boom"), "InternalError", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, apperrors.Kind(tt.err))
			assert.Equal(t, tt.wantStatus, apperrors.HTTPStatus(tt.err))
		})
	}
}

func TestNewDependencyError_KeepsCause(t *testing.T) {
	err := apperrors.NewDependencyError("enterprise lookup failed", context.Canceled)

	assert.ErrorIs(t, err, apperrors.ErrDependency)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "enterprise lookup failed")
}
