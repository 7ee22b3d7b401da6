package form

import "errors"

// Trigger selects when a field recomputes its error flag.
type Trigger int

const (
	// OnChange validates on every value change.
	OnChange Trigger = iota
	// OnBlur validates when the field loses focus.
	OnBlur
)

func (t Trigger) String() string {
	if t == OnBlur {
		return "blur"
	}
	return "change"
}

// Field is the validation state of one input.
type Field struct {
	name       string
	trigger    Trigger
	required   bool
	validators []Validator

	value   string
	errored bool
	message string
}

// NewField creates a field validated with validators at the given trigger.
func NewField(name string, trigger Trigger, validators ...Validator) *Field {
	return &Field{name: name, trigger: trigger, validators: validators}
}

// Require marks the field as required for submission and returns it.
func (f *Field) Require() *Field {
	f.required = true
	return f
}

// Name returns the field name.
func (f *Field) Name() string { return f.name }

// Value returns the current value.
func (f *Field) Value() string { return f.value }

// Trigger returns when the field validates.
func (f *Field) Trigger() Trigger { return f.trigger }

// Required reports whether the field must be non-empty to submit.
func (f *Field) Required() bool { return f.required }

// Empty reports whether the current value is empty.
func (f *Field) Empty() bool { return f.value == "" }

// HasError returns the field's error flag.
func (f *Field) HasError() bool { return f.errored }

// Message returns the message of the current error, or "".
func (f *Field) Message() string { return f.message }

// SetValue stores v and, for OnChange fields, recomputes the error flag.
func (f *Field) SetValue(v string) {
	f.value = v
	if f.trigger == OnChange {
		f.Validate()
	}
}

// Blur stores the value the input held when it lost focus and, for OnBlur
// fields, recomputes the error flag.
func (f *Field) Blur(v string) {
	f.value = v
	if f.trigger == OnBlur {
		f.Validate()
	}
}

// Validate recomputes the error flag regardless of trigger and reports
// whether the field is free of errors.
func (f *Field) Validate() bool {
	f.errored = false
	f.message = ""
	if f.value == "" {
		return true
	}
	err := Validate(f.value, f.validators...)
	if err == nil {
		return true
	}
	f.errored = true
	var ve ValidationError
	if errors.As(err, &ve) {
		f.message = ve.Message
	} else {
		f.message = err.Error()
	}
	return false
}

// Reset clears the value and error state.
func (f *Field) Reset() {
	f.value = ""
	f.errored = false
	f.message = ""
}

// Set is an ordered group of fields submitted together.
type Set struct {
	fields []*Field
}

// NewSet creates a set from fields.
func NewSet(fields ...*Field) *Set {
	return &Set{fields: fields}
}

// Fields returns the fields in order.
func (s *Set) Fields() []*Field { return s.fields }

// Field returns the field with the given name, or nil.
func (s *Set) Field(name string) *Field {
	for _, f := range s.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// SubmitDisabled reports whether submission is blocked: some field is
// flagged or some required field is empty.
func (s *Set) SubmitDisabled() bool {
	for _, f := range s.fields {
		if f.errored || (f.required && f.Empty()) {
			return true
		}
	}
	return false
}

// ValidateAll forces validation of every field and reports whether the set
// can be submitted.
func (s *Set) ValidateAll() bool {
	for _, f := range s.fields {
		f.Validate()
	}
	return !s.SubmitDisabled()
}

// Values returns the current values keyed by field name.
func (s *Set) Values() map[string]string {
	out := make(map[string]string, len(s.fields))
	for _, f := range s.fields {
		out[f.name] = f.value
	}
	return out
}

// Reset clears every field.
func (s *Set) Reset() {
	for _, f := range s.fields {
		f.Reset()
	}
}
