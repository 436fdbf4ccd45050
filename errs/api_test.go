package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotFoundErrorMatchesSentinel(t *testing.T) {
	err := NewNotFoundError("project not found")

	require.True(t, IsNotFound(err))
	require.Equal(t, http.StatusNotFound, err.StatusCode)
	require.Equal(t, "not found: project not found", err.Error())
}

func TestBadRequestErrorMatchesSentinel(t *testing.T) {
	err := NewBadRequestError("malformed form submission")

	require.ErrorIs(t, err, ErrBadRequest)
	require.False(t, IsNotFound(err))
	require.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestDatabaseErrorKeepsCause(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := NewDatabaseError("create", "project", cause)

	require.ErrorIs(t, err, ErrInternal)
	require.Equal(t, http.StatusInternalServerError, err.StatusCode)
	require.Contains(t, err.GetFullError(), "failed to create project")
	require.Contains(t, err.GetFullError(), "disk I/O error")
}
