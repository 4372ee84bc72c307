// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeRenderFailed,
//	    "status provider failed",
//	    renderErr,
//	    map[string]interface{}{
//	        "provider": label,
//	        "mode": mode,
//	    },
//	)
package errors
