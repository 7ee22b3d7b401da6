// Package errors provides coded, structured errors for the dashboard
// runtime and CLI.
//
// Every runtime failure the server reports carries a short code ("D002")
// that maps to a registered template:
//
//	err := errors.New(errors.CodeHandlerNotFound).
//	    WithDetail("no click handler on h4").
//	    WithSuggestion("the page re-rendered; retry the action")
//
// Codes travel to the browser in protocol error frames and to the terminal
// through Format. Use errors.Is with a bare coded error to match by code:
//
//	if stderrors.Is(err, errors.New(errors.CodeSessionNotFound)) { ... }
package errors
