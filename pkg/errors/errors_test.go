package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseError(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("insert invest: %w", Database(cause))

	assert.True(t, IsDatabase(err))
	assert.ErrorIs(t, err, cause)

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "Database error", appErr.Message)
	assert.Equal(t, "connection refused", appErr.Cause())
	assert.Equal(t, "DATABASE_ERROR: Database error (connection refused)", appErr.Error())
}

func TestNewWithoutCause(t *testing.T) {
	err := New(ErrCodeInternalError, "boom")

	assert.False(t, IsDatabase(err))
	assert.Equal(t, "boom", err.Cause())
	assert.Equal(t, "INTERNAL_ERROR: boom", err.Error())
	assert.NoError(t, err.Unwrap())
}
