package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"session not found", CodeSessionNotFound, "Session not found", CategoryRuntime},
		{"handler not found", CodeHandlerNotFound, "Handler not found", CategoryRuntime},
		{"malformed frame", CodeMalformedFrame, "Malformed event frame", CategoryProtocol},
		{"invalid config", CodeInvalidConfig, "Invalid configuration", CategoryConfig},
		{"render failed", CodeRenderFailed, "Render failed", CategoryRender},
		{"unknown error code", "D999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryRuntime, "session %q idle", "abc")
	if err.Message != `session "abc" idle` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Code != "" {
		t.Errorf("Code = %q, want empty", err.Code)
	}
}

func TestDashError_Error(t *testing.T) {
	err := New(CodeHandlerNotFound)
	if got, want := err.Error(), "D002: Handler not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	wrapped := New(CodeConfigLoad).Wrap(fmt.Errorf("open dashboard.yaml: no such file"))
	if got := wrapped.Error(); !strings.HasSuffix(got, "no such file") {
		t.Errorf("Error() = %q, want cause appended", got)
	}

	plain := &DashError{Message: "test error"}
	if plain.Error() != "test error" {
		t.Errorf("Error() = %q", plain.Error())
	}
}

func TestIsAndUnwrap(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := fmt.Errorf("serve: %w", New(CodeRenderFailed).Wrap(cause))

	if !stderrors.Is(err, New(CodeRenderFailed)) {
		t.Error("expected errors.Is to match by code")
	}
	if stderrors.Is(err, New(CodeSessionClosed)) {
		t.Error("different code must not match")
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the wrapped cause")
	}
	if CodeOf(err) != CodeRenderFailed {
		t.Errorf("CodeOf = %q", CodeOf(err))
	}
	if CodeOf(cause) != "" {
		t.Errorf("CodeOf(plain) = %q", CodeOf(cause))
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, CodeRenderFailed) != nil {
		t.Error("FromError(nil) should be nil")
	}

	original := New(CodeSessionNotFound)
	if got := FromError(fmt.Errorf("ctx: %w", original), CodeRenderFailed); got != original {
		t.Error("FromError should return the DashError already in the chain")
	}

	got := FromError(fmt.Errorf("plain"), CodeRenderFailed)
	if got.Code != CodeRenderFailed || got.Wrapped == nil {
		t.Errorf("FromError = %+v", got)
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New(CodeHandlerNotFound).
		WithDetailf("no %s handler on %s", "click", "h4").
		Wrap(fmt.Errorf("stale"))
	out := err.Format()

	for _, want := range []string{
		"ERROR D002: Handler not found",
		"no click handler on h4",
		"Cause: stale",
		"Hint: The page re-rendered",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\033[") {
		t.Error("colors should be disabled")
	}
}

func TestFormatCompactAndJSON(t *testing.T) {
	err := New(CodeMalformedFrame).WithDetail("unexpected EOF")
	if got := err.FormatCompact(); got != "D003: Malformed event frame" {
		t.Errorf("FormatCompact() = %q", got)
	}

	js := err.FormatJSON()
	for _, want := range []string{`"code":"D003"`, `"category":"protocol"`, `"detail":"unexpected EOF"`} {
		if !strings.Contains(js, want) {
			t.Errorf("FormatJSON() = %s, missing %s", js, want)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText(strings.Repeat("word ", 30), 20)
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line too long: %q", l)
		}
	}
	if wrapText("", 10) != nil {
		t.Error("empty text should produce no lines")
	}
}

func TestGetAllCodes(t *testing.T) {
	codes := GetAllCodes()
	if len(codes) != 9 {
		t.Fatalf("got %d codes", len(codes))
	}
	if codes[0] != CodeSessionNotFound {
		t.Errorf("codes not sorted: %v", codes)
	}
	if _, ok := GetTemplate(CodeSessionClosed); !ok {
		t.Error("missing template for D004")
	}
}
