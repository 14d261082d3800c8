package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	errs := ValidateUser("alice", "alice@example.com", "Alice", "")
	assert.False(t, errs.HasErrors())

	errs = ValidateUser("", "", "", "")
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "full_name")

	errs = ValidateUser("a!", "nope", "Alice", strings.Repeat("b", 501))
	assert.Contains(t, errs, "username")
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "bio")
}

func TestValidateUser_MultibyteBounds(t *testing.T) {
	// Bounds are in characters, not bytes.
	errs := ValidateUser("alice", "alice@example.com", strings.Repeat("ü", 100), strings.Repeat("é", 500))
	assert.False(t, errs.HasErrors())

	errs = ValidateUser("alice", "alice@example.com", strings.Repeat("ü", 101), strings.Repeat("é", 501))
	assert.Contains(t, errs, "full_name")
	assert.Contains(t, errs, "bio")
}

func TestValidateUser_NoTrimming(t *testing.T) {
	// Values are validated exactly as stored; padded usernames are rejected
	// instead of silently passing on the trimmed form.
	errs := ValidateUser(" alice ", "alice@example.com", "Alice", "")
	assert.Contains(t, errs, "username")
}

func TestValidateUserUpdate(t *testing.T) {
	errs := ValidateUserUpdate(nil, nil)
	assert.False(t, errs.HasErrors())

	empty := ""
	errs = ValidateUserUpdate(&empty, nil)
	assert.Contains(t, errs, "full_name")

	longBio := strings.Repeat("b", 501)
	errs = ValidateUserUpdate(nil, &longBio)
	assert.Contains(t, errs, "bio")
}

func TestValidateTweet(t *testing.T) {
	assert.False(t, ValidateTweet("hi").HasErrors())
	assert.Contains(t, ValidateTweet(""), "content")
	assert.Contains(t, ValidateTweet(strings.Repeat("x", 281)), "content")

	// 280 multibyte characters are within bounds even at >280 bytes.
	assert.False(t, ValidateTweet(strings.Repeat("é", 280)).HasErrors())
	assert.Contains(t, ValidateTweet(strings.Repeat("é", 281)), "content")
}

func TestValidationErrorsError(t *testing.T) {
	errs := make(ValidationErrors)
	errs.Add("username", "Username is required")
	errs.Add("email", "Invalid email address")

	msg := errs.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "username: Username is required")
	assert.Contains(t, msg, "email: Invalid email address")
}
