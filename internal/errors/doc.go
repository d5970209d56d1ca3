// Package errors provides coded, actionable errors for hashui.
//
// Every fail-fast condition in the runtime maps to a registered code
// (e.g. "H040") that carries a category, a short message and a longer
// explanation. Callers compare errors by code with the standard library:
//
//	if errors.Is(err, herrors.New(herrors.CodeRootNotFound)) {
//	    ...
//	}
//
// # Error Categories
//
//   - validation: malformed element trees
//   - render: renderer input errors
//   - lifecycle: application state machine preconditions
//   - config: configuration loading and validation
//
// # Usage
//
//	err := errors.New(errors.CodeRootNotFound).
//	    WithDetail(`selector "#app" matched nothing`).
//	    WithSuggestion("Add the root container to the page before Initialize")
//
//	fmt.Println(err.Format())
package errors
