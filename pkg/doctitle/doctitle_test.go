package doctitle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "Login - Spearit Dashboard", Format("Login"))
	assert.Equal(t, "Spearit Dashboard", Format(""))
}

func TestApplyLastWriterWins(t *testing.T) {
	var r Recorder
	assert.Empty(t, r.Title())

	Apply(&r, "Login")
	Apply(&r, "Signup")
	Apply(&r, "Signup")

	assert.Equal(t, "Signup - Spearit Dashboard", r.Title())
	assert.Equal(t, []string{
		"Login - Spearit Dashboard",
		"Signup - Spearit Dashboard",
		"Signup - Spearit Dashboard",
	}, r.Titles())
}

func TestApplyNilSetter(t *testing.T) {
	assert.NotPanics(t, func() { Apply(nil, "x") })
}
