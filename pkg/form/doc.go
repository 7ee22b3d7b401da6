// Package form provides field validation for dashboard forms.
//
// Validators map a string to an error. Non-required validators accept the
// empty string, so an untouched field is never flagged:
//
//	email := form.NewField("email", form.OnChange, form.Email(""))
//	email.SetValue("not-an-email")
//	email.HasError() // true
//	email.SetValue("")
//	email.HasError() // false
//
// A Set gates submission. It is disabled while any field is flagged or any
// required field is still empty:
//
//	fields := form.NewSet(email.Require(), password.Require())
//	disabled := fields.SubmitDisabled()
package form
