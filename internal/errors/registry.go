package errors

import "sort"

// Registered error codes.
const (
	CodeEmptyTag          = "H001"
	CodeMissingAttributes = "H002"
	CodeMissingChildren   = "H003"
	CodeNilChild          = "H004"
	CodeInvalidAttribute  = "H005"

	CodeNotAnElement    = "H020"
	CodeMissingElements = "H021"
	CodeAttributesType  = "H022"
	CodeNoContainer     = "H023"

	CodeRootNotFound        = "H040"
	CodeNoRenderFunction    = "H041"
	CodeNotInitialized      = "H042"
	CodeInvalidRenderFunc   = "H043"
	CodeRenderFunctionPanic = "H044"

	CodeInvalidConfig = "H060"
	CodeConfigParse   = "H061"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Element validation (H001-H019)

	CodeEmptyTag: {
		Category:   CategoryValidation,
		Message:    "Element tag is empty",
		Suggestion: `Every element needs a tag name such as "div" or "li".`,
	},
	CodeMissingAttributes: {
		Category:   CategoryValidation,
		Message:    "Element attributes are missing",
		Suggestion: "Pass vdom.Attrs{} when the element has no attributes.",
	},
	CodeMissingChildren: {
		Category:   CategoryValidation,
		Message:    "Element children are missing",
		Suggestion: "Pass an empty []*vdom.VNode{} when the element has no children.",
	},
	CodeNilChild: {
		Category: CategoryValidation,
		Message:  "Element child is nil",
	},
	CodeInvalidAttribute: {
		Category:   CategoryValidation,
		Message:    "Unsupported attribute value",
		Suggestion: "Attribute values must be strings, booleans, numbers, func() or func(dom.Event).",
	},

	// Renderer input (H020-H039)

	CodeNotAnElement: {
		Category: CategoryRender,
		Message:  "Render input is not an element",
	},
	CodeMissingElements: {
		Category:   CategoryRender,
		Message:    "Render elements are missing",
		Suggestion: "Render takes a slice of elements; wrap a single tree in []*vdom.VNode{tree}.",
	},
	CodeAttributesType: {
		Category: CategoryRender,
		Message:  "Element attributes are not a plain mapping",
	},
	CodeNoContainer: {
		Category: CategoryRender,
		Message:  "Render container is missing",
	},

	// Application lifecycle (H040-H059)

	CodeRootNotFound: {
		Category:   CategoryLifecycle,
		Message:    "Root container not found",
		Suggestion: "Make sure the root selector matches an element present before Initialize.",
	},
	CodeNoRenderFunction: {
		Category:   CategoryLifecycle,
		Message:    "Render function not set",
		Suggestion: "Call SetRenderFunction before Initialize or Render.",
	},
	CodeNotInitialized: {
		Category:   CategoryLifecycle,
		Message:    "Application not initialized",
		Suggestion: "Call Initialize before Render.",
	},
	CodeInvalidRenderFunc: {
		Category: CategoryLifecycle,
		Message:  "Render function must not be nil",
	},
	CodeRenderFunctionPanic: {
		Category: CategoryLifecycle,
		Message:  "Render function panicked",
	},

	// Configuration (H060-H079)

	CodeInvalidConfig: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
	},
	CodeConfigParse: {
		Category: CategoryConfig,
		Message:  "Configuration file could not be parsed",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
