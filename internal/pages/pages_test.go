package pages

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spearit/dashboard/pkg/modal"
	"github.com/spearit/dashboard/pkg/toast"
	"github.com/spearit/dashboard/pkg/vtest"
)

func harnessEnv(h *vtest.Harness) Env {
	return Env{Sched: h.Sched, Toasts: h.Toasts, Title: h.Titles}
}

func TestLoginValidatesOnChange(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewLogin(harnessEnv(h)))

	assert.Equal(t, "Login - Spearit Dashboard", h.Title())
	assert.True(t, h.Contains("LOGIN"))
	assert.False(t, h.Contains(msgEmail), "untouched fields show no error")
	assert.True(t, h.Contains(" disabled"), "required fields are empty")

	h.Type(h.ByID("login-email"), "not-an-email")
	assert.True(t, h.Contains(msgEmail))

	h.Type(h.ByID("login-email"), "a@b.co")
	assert.False(t, h.Contains(msgEmail))

	h.Type(h.ByID("login-password"), "1234567")
	assert.True(t, h.Contains(msgPassword))
	assert.True(t, h.Contains(" disabled"))

	h.Type(h.ByID("login-password"), "12345678")
	assert.False(t, h.Contains(msgPassword))
	assert.False(t, h.Contains(" disabled"))
}

func TestLoginPasswordToggle(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewLogin(harnessEnv(h)))

	assert.True(t, h.Contains(`type="password"`))
	h.Click(h.ByID("login-password-icon"))
	assert.True(t, h.Contains(`type="text"`))
	assert.False(t, h.Contains(`type="password"`))
	h.Click(h.ByID("login-password-icon"))
	assert.True(t, h.Contains(`type="password"`))
}

func TestLoginForgotPasswordModal(t *testing.T) {
	h := vtest.NewHarness(t)
	page := NewLogin(harnessEnv(h))
	h.Mount(page)

	assert.False(t, h.HasID("forgot"))

	h.Click(h.ByID("login-forgot"))
	require.True(t, h.HasID("forgot"))
	assert.False(t, page.forgot.Visible())

	h.Frame()
	h.Frame()
	assert.True(t, page.forgot.Visible())

	h.Click(h.ByID("forgot-close"))
	assert.False(t, page.forgot.Visible())
	h.Advance(modal.DefaultDuration)
	assert.False(t, h.HasID("forgot"))
}

func TestLoginDisposeCancelsModalTransition(t *testing.T) {
	h := vtest.NewHarness(t)
	page := NewLogin(harnessEnv(h))
	h.Mount(page)

	h.Click(h.ByID("login-forgot"))
	page.Dispose()
	h.Frame()
	h.Frame()
	assert.False(t, page.forgot.Visible())
}

func TestLoginSubmitWithoutBackend(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewLogin(harnessEnv(h)))

	h.Type(h.ByID("login-email"), "a@b.co")
	h.Type(h.ByID("login-password"), "correct-horse")
	h.Click(h.ByID("login-submit"))

	visible := h.Toasts.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, toast.LevelInfo, visible[0].Level)
	assert.True(t, h.Contains("Authentication is not connected"))

	h.Advance(toast.DefaultLifetime + toast.DefaultExitDuration)
	assert.Empty(t, h.Toasts.Toasts())
	assert.False(t, h.Contains("Authentication is not connected"))
}

func TestLoginSubmitHook(t *testing.T) {
	h := vtest.NewHarness(t)
	env := harnessEnv(h)
	var got map[string]string
	env.Submit = func(form string, values map[string]string) error {
		assert.Equal(t, "login", form)
		got = values
		return errors.New("invalid credentials")
	}
	h.Mount(NewLogin(env))

	h.Type(h.ByID("login-email"), "a@b.co")
	h.Type(h.ByID("login-password"), "correct-horse")
	h.Click(h.ByID("login-submit"))

	assert.Equal(t, map[string]string{"email": "a@b.co", "password": "correct-horse"}, got)
	require.Len(t, h.Toasts.Visible(), 1)
	assert.Equal(t, toast.LevelError, h.Toasts.Visible()[0].Level)
	assert.True(t, h.Contains("invalid credentials"))
}

func TestSignupValidatesOnBlur(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewSignup(harnessEnv(h)))

	assert.Equal(t, "Signup - Spearit Dashboard", h.Title())
	assert.True(t, h.Contains("SIGNUP"))
	assert.False(t, h.Contains(msgEmail), "error hints are gated by the error flags")
	assert.False(t, h.Contains(msgPassword))

	h.Type(h.ByID("signup-name"), "Jo")
	assert.False(t, h.Contains(msgName), "typing alone does not validate")
	h.Blur(h.ByID("signup-name"), "Jo")
	assert.True(t, h.Contains(msgName))

	h.Type(h.ByID("signup-name"), "Joe")
	assert.True(t, h.Contains(msgName), "the flag holds until the next blur")
	h.Blur(h.ByID("signup-name"), "Joe")
	assert.False(t, h.Contains(msgName))
}

func TestSignupErrorHintsFollowFlags(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewSignup(harnessEnv(h)))

	assert.Empty(t, h.ByID("signup-errors").Children)

	h.Blur(h.ByID("signup-email"), "not-an-email")
	require.Len(t, h.ByID("signup-errors").Children, 1)
	assert.True(t, h.Contains(msgEmail))
	assert.False(t, h.Contains(msgPassword))

	h.Blur(h.ByID("signup-email"), "a@b.co")
	assert.Empty(t, h.ByID("signup-errors").Children)
}

func TestSignupSubmitGate(t *testing.T) {
	h := vtest.NewHarness(t)
	page := NewSignup(harnessEnv(h))
	h.Mount(page)

	fill := func(id, value string) {
		h.Type(h.ByID(id), value)
		h.Blur(h.ByID(id), value)
	}
	fill("signup-email", "a@b.co")
	fill("signup-password", "12345678")
	assert.True(t, page.fields.SubmitDisabled(), "name is still empty")

	fill("signup-name", "Joe")
	assert.False(t, page.fields.SubmitDisabled())

	fill("signup-password", "short")
	assert.True(t, page.fields.SubmitDisabled())
	assert.True(t, h.Contains(msgPassword))

	fill("signup-password", "long enough")
	h.Click(h.ByText("Sign Up"))
	assert.Len(t, h.Toasts.Visible(), 1)
}

func TestSignupLinksToLogin(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewSignup(harnessEnv(h)))
	assert.True(t, h.Contains(`href="/login"`))
	assert.True(t, h.Contains("Already have an account?"))
}

func TestMatch(t *testing.T) {
	h := vtest.NewHarness(t)
	env := harnessEnv(h)

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/login", http.StatusOK, "LOGIN"},
		{"/login/", http.StatusOK, "LOGIN"},
		{"/signup", http.StatusOK, "SIGNUP"},
		{"/", http.StatusNotFound, "404"},
		{"/reports/2024", http.StatusNotFound, "/reports/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			build, status := Match(tt.path)
			assert.Equal(t, tt.status, status)
			html := vtest.RenderToString(build(env).Render())
			assert.True(t, strings.Contains(html, tt.want), html)
		})
	}
}

func TestNotFoundTitle(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewNotFound(harnessEnv(h), "/nope"))
	assert.Equal(t, "Not Found - Spearit Dashboard", h.Title())
	assert.True(t, h.Contains(`href="/login"`))
}

func TestToastsBoundedOnPage(t *testing.T) {
	h := vtest.NewHarness(t)
	h.Mount(NewLogin(harnessEnv(h)))

	for i := 0; i < 5; i++ {
		h.Toasts.Info("note", "")
	}
	h.Advance(time.Millisecond)
	assert.Len(t, h.Toasts.Visible(), toast.DefaultLimit)
}
