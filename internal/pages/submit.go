package pages

import "github.com/spearit/dashboard/pkg/form"

// Validation messages shared by the auth forms.
const (
	msgEmail    = "Please enter a valid email"
	msgPassword = "Please enter a valid password"
	msgName     = "Please enter your full name"
)

const minPasswordLength = 8

func emailField(trigger form.Trigger) *form.Field {
	return form.NewField("email", trigger, form.Email(msgEmail)).Require()
}

func passwordField(trigger form.Trigger) *form.Field {
	return form.NewField("password", trigger, form.MinLength(minPasswordLength, msgPassword)).Require()
}

// submit validates every field and hands the values to the Submit hook.
func submit(env Env, name string, fields *form.Set) {
	if !fields.ValidateAll() {
		return
	}
	log := env.logger().With("form", name)

	if env.Submit == nil {
		log.Info("form submitted without a backend")
		env.Toasts.Info("Authentication is not connected", "This dashboard has no account backend yet.")
		return
	}
	if err := env.Submit(name, fields.Values()); err != nil {
		log.Warn("form submission failed", "error", err)
		env.Toasts.Error("Request failed", err.Error())
		return
	}
	log.Info("form submitted")
	env.Toasts.Success("Done", "")
}
