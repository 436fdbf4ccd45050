package errs

import (
	"fmt"
	"net/http"
)

// NewDatabaseError wraps a storage engine failure with the operation and
// entity it happened on. Storage failures surface as 500s and are not retried.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrInternal,
		Details:    fmt.Sprintf("failed to %s %s", operation, entity),
		Cause:      cause,
	}
}
