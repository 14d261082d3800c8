package validator

import (
	"fmt"
	"net/mail"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

// Error makes ValidationErrors usable as an error so entity constructors
// can return the field map directly.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Length bounds count characters, not bytes, so multibyte input up to the
// limit is accepted. Values are validated as given; nothing is trimmed.
func ValidateUser(username, email, fullName, bio string) ValidationErrors {
	errs := make(ValidationErrors)

	if username == "" {
		errs.Add("username", "Username is required")
	} else if utf8.RuneCountInString(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if utf8.RuneCountInString(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, _ and -")
	}

	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	validateFullName(fullName, errs)
	validateBio(bio, errs)

	return errs
}

// ValidateUserUpdate checks only the fields a PUT /users/{id} body may carry.
func ValidateUserUpdate(fullName, bio *string) ValidationErrors {
	errs := make(ValidationErrors)

	if fullName != nil {
		validateFullName(*fullName, errs)
	}
	if bio != nil {
		validateBio(*bio, errs)
	}

	return errs
}

func ValidateTweet(content string) ValidationErrors {
	errs := make(ValidationErrors)

	if content == "" {
		errs.Add("content", "Tweet content is required")
	} else if utf8.RuneCountInString(content) > 280 {
		errs.Add("content", "Tweet content must be at most 280 characters")
	}

	return errs
}

func validateFullName(fullName string, errs ValidationErrors) {
	if fullName == "" {
		errs.Add("full_name", "Full name is required")
	} else if utf8.RuneCountInString(fullName) > 100 {
		errs.Add("full_name", "Full name is too long")
	}
}

func validateBio(bio string, errs ValidationErrors) {
	if utf8.RuneCountInString(bio) > 500 {
		errs.Add("bio", "Bio must be at most 500 characters")
	}
}
