// Package errors provides structured error types shared by the catalog, the
// dataset loaders and the transports.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to load dataset",
//	    cause,
//	    map[string]any{
//	        "source": "https://example.com/recipes.json",
//	    },
//	)
package errors
