package pages

import (
	"github.com/spearit/dashboard/internal/ui"
	"github.com/spearit/dashboard/pkg/form"
	"github.com/spearit/dashboard/pkg/modal"
	. "github.com/spearit/dashboard/pkg/vdom"
)

// Login is the sign-in screen. Its fields validate on every change.
type Login struct {
	env Env

	email    *form.Field
	password *form.Field
	fields   *form.Set

	showPassword bool
	submitButton ui.Button
	forgot       *modal.Lifecycle
}

// NewLogin creates the login page.
func NewLogin(env Env) *Login {
	p := &Login{
		env:      env,
		email:    emailField(form.OnChange),
		password: passwordField(form.OnChange),
		forgot:   modal.New(env.Sched),
	}
	p.fields = form.NewSet(p.email, p.password)
	return p
}

// Dispose cancels the dialog transition in progress.
func (p *Login) Dispose() { p.forgot.Dispose() }

func (p *Login) Render() *VNode {
	return ui.Page(p.env.Title, ui.PageProps{Title: "Login", LimitWidth: true, Class: "p-12 flex justify-center items-center"},
		ui.PrimaryBox("flex flex-col items-center gap-5 w-full",
			ui.Logo(ui.LogoProps{Size: 40, ShowText: true}),
			P(Class("text-xl font-bold tracking-widest"), "LOGIN"),
			Div(Class("flex flex-col w-full gap-5"),
				ui.Input(ui.InputProps{
					ID:          "login-email",
					Title:       "Email",
					Placeholder: "e.g. example@gmail.com",
					Value:       p.email.Value(),
					Errored:     p.email.HasError(),
					Class:       "w-full",
					OnChange:    p.email.SetValue,
				}),
				If(p.email.HasError(), ui.ErrorHint(p.email.Message())),
				passwordInput("login-password", p.password, &p.showPassword),
				If(p.password.HasError(), ui.ErrorHint(p.password.Message())),
				Div(Class("flex justify-end"),
					Span(ID("login-forgot"), Class("text-sm cursor-pointer underline"), OnClick(p.forgot.Open), "Forgot password?"),
				),
			),
			p.submitButton.Render(ui.ButtonProps{
				ID:           "login-submit",
				Title:        "Log In",
				Hint:         "Sign in to the dashboard",
				DisabledHint: "Enter a valid email and password first",
				Highlight:    true,
				Disabled:     p.fields.SubmitDisabled(),
				OnClick:      func() { submit(p.env, "login", p.fields) },
				Class:        "px-20 rounded-xl mt-5",
			}),
			P(Class("text-sm"), "Don't have an account? ", A(Href("/signup"), Class("underline"), "Sign Up")),
		),
		ui.Modal(p.forgot, ui.ModalProps{ID: "forgot", Title: "Forgot password", OnClose: p.forgot.Close},
			P(Class("text-sm"), "Password resets are handled by your SpearIT administrator. Ask them to issue a new password for your account."),
		),
		ui.Toaster(p.env.Toasts),
	)
}

// passwordInput renders a password field with a visibility toggle bound to
// show.
func passwordInput(id string, f *form.Field, show *bool) *VNode {
	typ, icon := "password", ui.Eye("w-4 h-4")
	if *show {
		typ, icon = "text", ui.EyeClosed("w-4 h-4")
	}
	props := ui.InputProps{
		ID:          id,
		Title:       "Password",
		Placeholder: "Enter your password",
		Type:        typ,
		Value:       f.Value(),
		Errored:     f.HasError(),
		Class:       "w-full",
		Icon:        icon,
		OnChange:    f.SetValue,
		OnIconClick: func() { *show = !*show },
	}
	if f.Trigger() == form.OnBlur {
		props.OnBlur = f.Blur
	}
	return ui.Input(props)
}
