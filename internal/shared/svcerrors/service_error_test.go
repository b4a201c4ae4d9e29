package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("USG_1000", "line 1: no quoted section", nil),
			wantErr: NewInvalidArgumentError("USG_1000", "line 1: no quoted section", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("SRC_9000", nil)),
			wantErr: NewInternalError("SRC_9000", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped not found ServiceError",
			err:     fmt.Errorf("wrap: %w", NewNotFoundError("SRC_1000", "log file not found", nil)),
			wantErr: NewNotFoundError("SRC_1000", "log file not found", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_CategoryPredicates(t *testing.T) {
	t.Parallel()

	invalid := NewInvalidArgumentError("USG_1000", "bad line", nil)
	notFound := NewNotFoundError("SRC_1000", "missing", nil)
	internal := NewInternalErrorPanic(errors.New("boom"))

	assert.True(t, invalid.IsInvalidArgument())
	assert.False(t, invalid.IsNotFound())
	assert.False(t, invalid.IsInternalError())
	assert.Equal(t, 400, invalid.HttpStatusCode)

	assert.True(t, notFound.IsNotFound())
	assert.Equal(t, 404, notFound.HttpStatusCode)

	assert.True(t, internal.IsInternalError())
	assert.Equal(t, "SYS_9000", internal.Code)
	assert.Equal(t, "internal server error", internal.Message)
}

func TestServiceError_UnwrapsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := fmt.Errorf("outer: %w", NewInvalidArgumentError("USG_1000", "bad line", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "USG_1000: bad line", NewInvalidArgumentError("USG_1000", "bad line", cause).Error())
}
