package app

import "github.com/vango-dev/hashui/internal/errors"

// Sentinel errors for lifecycle preconditions. Returned errors carry more
// detail and match these with errors.Is.
var (
	// ErrRootNotFound is returned by Initialize when the root selector
	// matches nothing.
	ErrRootNotFound = errors.New(errors.CodeRootNotFound)

	// ErrNoRenderFunction is returned by Render before SetRenderFunction.
	ErrNoRenderFunction = errors.New(errors.CodeNoRenderFunction)

	// ErrNotInitialized is returned by Render before Initialize.
	ErrNotInitialized = errors.New(errors.CodeNotInitialized)

	// ErrInvalidRenderFunction is returned by SetRenderFunction for nil.
	ErrInvalidRenderFunction = errors.New(errors.CodeInvalidRenderFunc)

	// ErrRenderPanic is returned by Render when the render function panics
	// with something other than a validation error.
	ErrRenderPanic = errors.New(errors.CodeRenderFunctionPanic)
)
