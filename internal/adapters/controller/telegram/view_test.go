package telegram

import (
	"PocketFormsBot/internal/domain/errorz"
	"PocketFormsBot/internal/domain/schema"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginErrorMessage(t *testing.T) {
	assert.Equal(t, "User does not exist. Please sign up.",
		loginErrorMessage(&errorz.AuthError{Reason: "User not found"}))
	assert.Equal(t, "Invalid login credentials. Please try again.",
		loginErrorMessage(&errorz.AuthError{Reason: "Wrong password"}))
	assert.Equal(t, "Invalid login credentials. Please try again.",
		loginErrorMessage(errors.New("connection refused")))
}

func TestSignupErrorMessage(t *testing.T) {
	assert.Equal(t, "Email is already in use. Please log in.",
		signupErrorMessage(&errorz.AuthError{Reason: "Email already in use"}))
	assert.Equal(t, "Something went wrong. Please try again.",
		signupErrorMessage(errors.New("connection refused")))
}

func TestParseKind(t *testing.T) {
	kind, ok := parseKind("bld:k:checkbox")
	assert.True(t, ok)
	assert.Equal(t, schema.KindCheckbox, kind)

	_, ok = parseKind("bld:k:slider")
	assert.False(t, ok)

	_, ok = parseKind("bld:k")
	assert.False(t, ok)
}

func TestShortText(t *testing.T) {
	assert.Equal(t, "short", shortText("  short  ", 10))
	assert.Equal(t, "very long…", shortText("very long question text", 10))
}
