package errors

import "sort"

// Error codes.
const (
	CodeSessionNotFound = "D001"
	CodeHandlerNotFound = "D002"
	CodeMalformedFrame  = "D003"
	CodeSessionClosed   = "D004"
	CodeSessionLimit    = "D005"
	CodeHandlerPanic    = "D006"
	CodeInvalidConfig   = "D010"
	CodeConfigLoad      = "D011"
	CodeRenderFailed    = "D020"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime (D001-D009)
	CodeSessionNotFound: {
		Category:   CategoryRuntime,
		Message:    "Session not found",
		Suggestion: "Reload the page to start a new session.",
	},
	CodeHandlerNotFound: {
		Category:   CategoryRuntime,
		Message:    "Handler not found",
		Suggestion: "The page re-rendered before the event arrived; retry the action.",
	},
	CodeMalformedFrame: {
		Category: CategoryProtocol,
		Message:  "Malformed event frame",
	},
	CodeSessionClosed: {
		Category:   CategoryRuntime,
		Message:    "Session closed",
		Suggestion: "Reload the page to start a new session.",
	},
	CodeSessionLimit: {
		Category:   CategoryRuntime,
		Message:    "Session limit reached",
		Suggestion: "Raise session.max_sessions or lower session.idle_timeout.",
	},
	CodeHandlerPanic: {
		Category: CategoryRuntime,
		Message:  "Internal error",
	},

	// Configuration (D010-D019)
	CodeInvalidConfig: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Run `dashboard config` to print the effective configuration.",
	},
	CodeConfigLoad: {
		Category:   CategoryConfig,
		Message:    "Configuration load failed",
		Suggestion: "Check that the config file exists and is valid YAML.",
	},

	// Rendering (D020-D029)
	CodeRenderFailed: {
		Category: CategoryRender,
		Message:  "Render failed",
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
