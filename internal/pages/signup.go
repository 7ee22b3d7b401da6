package pages

import (
	"github.com/spearit/dashboard/internal/ui"
	"github.com/spearit/dashboard/pkg/form"
	. "github.com/spearit/dashboard/pkg/vdom"
)

const minNameLength = 3

// Signup is the account creation screen. Its fields validate when they
// lose focus. Each error hint renders only while its field is in error;
// earlier dashboards showed every hint unconditionally.
type Signup struct {
	env Env

	email    *form.Field
	password *form.Field
	name     *form.Field
	fields   *form.Set

	showPassword bool
	submitButton ui.Button
}

// NewSignup creates the signup page.
func NewSignup(env Env) *Signup {
	p := &Signup{
		env:      env,
		email:    emailField(form.OnBlur),
		password: passwordField(form.OnBlur),
		name:     form.NewField("name", form.OnBlur, form.MinLength(minNameLength, msgName)).Require(),
	}
	p.fields = form.NewSet(p.email, p.password, p.name)
	return p
}

func (p *Signup) Render() *VNode {
	return ui.Page(p.env.Title, ui.PageProps{Title: "Signup", LimitWidth: true, Class: "p-12 flex justify-center"},
		ui.PrimaryBox("flex flex-col items-center gap-5 w-full",
			ui.Logo(ui.LogoProps{Size: 40, ShowText: true}),
			P(Class("text-xl font-bold tracking-widest"), "SIGNUP"),
			Div(Class("flex flex-col w-full gap-5"),
				ui.Input(ui.InputProps{
					ID:          "signup-email",
					Title:       "Email",
					Placeholder: "e.g. example@gmail.com",
					Value:       p.email.Value(),
					Errored:     p.email.HasError(),
					Class:       "w-full",
					OnChange:    p.email.SetValue,
					OnBlur:      p.email.Blur,
				}),
				passwordInput("signup-password", p.password, &p.showPassword),
				ui.Input(ui.InputProps{
					ID:          "signup-name",
					Title:       "Full Name",
					Placeholder: "e.g. John Doe",
					Value:       p.name.Value(),
					Errored:     p.name.HasError(),
					Class:       "w-full",
					OnChange:    p.name.SetValue,
					OnBlur:      p.name.Blur,
				}),
				Div(Class("flex flex-col gap-2"),
					P(Class("text-sm"), "Already have an account? ", A(Href("/login"), Class("underline"), "Log In")),
				),
				Div(ID("signup-errors"),
					If(p.email.HasError(), ui.ErrorHint(msgEmail)),
					If(p.password.HasError(), ui.ErrorHint(msgPassword)),
					If(p.name.HasError(), ui.ErrorHint(msgName)),
				),
				p.submitButton.Render(ui.ButtonProps{
					ID:           "signup-submit",
					Title:        "Sign Up",
					Hint:         "Create your account",
					DisabledHint: "Fill in every field correctly first",
					Highlight:    true,
					Disabled:     p.fields.SubmitDisabled(),
					OnClick:      func() { submit(p.env, "signup", p.fields) },
					Class:        "px-20 rounded-xl mt-10",
				}),
			),
		),
		ui.Toaster(p.env.Toasts),
	)
}
