package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	v := Email("")
	tests := []struct {
		value   string
		flagged bool
	}{
		{"a@b.co", false},
		{"first.last+tag@example.com", false},
		{"not-an-email", true},
		{"a@b", true},
		{"a@b.c", true},
		{"@example.com", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.flagged, HasError(tt.value, v))
		})
	}
}

func TestPasswordLength(t *testing.T) {
	v := MinLength(8, "")
	assert.False(t, HasError(strings.Repeat("x", 8), v))
	assert.True(t, HasError(strings.Repeat("x", 7), v))
	assert.False(t, HasError("", v))
}

func TestNameLength(t *testing.T) {
	v := MinLength(3, "")
	assert.True(t, HasError("Jo", v))
	assert.False(t, HasError("Joe", v))
	assert.False(t, HasError("Zoë", v), "length counts characters")
}

func TestRequiredValidator(t *testing.T) {
	v := Required("")
	assert.Error(t, v.Validate(""))
	assert.Error(t, v.Validate("   "))
	assert.NoError(t, v.Validate("x"))
}

func TestMaxLengthPatternCustom(t *testing.T) {
	assert.Error(t, MaxLength(3, "").Validate("abcd"))
	assert.NoError(t, MaxLength(3, "").Validate("abc"))

	p := Pattern(`^[0-9]+$`, "digits only")
	assert.NoError(t, p.Validate(""))
	assert.NoError(t, p.Validate("123"))
	err := p.Validate("12a")
	require.Error(t, err)
	assert.Equal(t, "digits only", err.Error())

	c := Custom(func(s string) bool { return s != "admin" }, "reserved")
	assert.Error(t, c.Validate("admin"))
	assert.NoError(t, c.Validate("bob"))
}

func TestValidateReturnsFirstFailure(t *testing.T) {
	err := Validate("ab", MinLength(3, "too short"), Pattern(`^x`, "bad prefix"))
	var ve ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "too short", ve.Message)
	assert.NoError(t, Validate("anything"))
}

func TestValidationErrorWithField(t *testing.T) {
	assert.Equal(t, "email: bad", ValidationError{Field: "email", Message: "bad"}.Error())
}

func TestFieldOnChange(t *testing.T) {
	f := NewField("email", OnChange, Email("Please enter a valid email"))

	f.SetValue("nope")
	assert.True(t, f.HasError())
	assert.Equal(t, "Please enter a valid email", f.Message())

	f.SetValue("a@b.co")
	assert.False(t, f.HasError())
	assert.Empty(t, f.Message())

	f.SetValue("nope")
	f.SetValue("")
	assert.False(t, f.HasError(), "clearing the field clears the flag")

	f.Blur("nope")
	assert.False(t, f.HasError(), "blur does not validate change-triggered fields")
	assert.Equal(t, "nope", f.Value())
}

func TestFieldOnBlur(t *testing.T) {
	f := NewField("password", OnBlur, MinLength(8, ""))
	assert.Equal(t, "blur", f.Trigger().String())

	f.SetValue("short")
	assert.False(t, f.HasError(), "typing does not validate blur-triggered fields")

	f.Blur("short")
	assert.True(t, f.HasError())

	f.SetValue("long enough")
	assert.True(t, f.HasError(), "flag persists until the next blur")

	f.Blur("long enough")
	assert.False(t, f.HasError())
}

func TestFieldValidateForces(t *testing.T) {
	f := NewField("name", OnBlur, MinLength(3, ""))
	f.SetValue("Jo")
	assert.False(t, f.Validate())
	assert.True(t, f.HasError())

	f.Reset()
	assert.True(t, f.Empty())
	assert.False(t, f.HasError())
}

func TestSetSubmitGating(t *testing.T) {
	email := NewField("email", OnChange, Email("")).Require()
	password := NewField("password", OnChange, MinLength(8, "")).Require()
	set := NewSet(email, password)

	assert.True(t, set.SubmitDisabled(), "required fields empty")

	email.SetValue("a@b.co")
	assert.True(t, set.SubmitDisabled(), "password still empty")

	password.SetValue("1234567")
	assert.True(t, set.SubmitDisabled(), "password flagged")

	password.SetValue("12345678")
	assert.False(t, set.SubmitDisabled())

	email.SetValue("broken")
	assert.True(t, set.SubmitDisabled())
}

func TestSetOptionalFieldsDoNotBlock(t *testing.T) {
	nick := NewField("nick", OnChange, MinLength(3, ""))
	set := NewSet(nick)
	assert.False(t, set.SubmitDisabled())

	nick.SetValue("ab")
	assert.True(t, set.SubmitDisabled())
}

func TestSetValidateAll(t *testing.T) {
	email := NewField("email", OnBlur, Email("")).Require()
	name := NewField("name", OnBlur, MinLength(3, "")).Require()
	set := NewSet(email, name)

	email.SetValue("a@b.co")
	name.SetValue("Jo")
	assert.False(t, set.SubmitDisabled(), "blur fields not validated yet")

	assert.False(t, set.ValidateAll())
	assert.True(t, name.HasError())

	name.SetValue("Joe")
	assert.True(t, set.ValidateAll())

	assert.Equal(t, map[string]string{"email": "a@b.co", "name": "Joe"}, set.Values())
	assert.Same(t, name, set.Field("name"))
	assert.Nil(t, set.Field("missing"))
	assert.Len(t, set.Fields(), 2)

	set.Reset()
	assert.True(t, email.Empty())
}
