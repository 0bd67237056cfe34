package services

import (
	"fmt"
	"net/url"
	"regexp"
	"unicode"

	"github.com/rajwantprajapati/devTinder/internal/models"
)

const maxSkills = 10

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func validEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// strongPassword requires at least 8 characters with at least one
// lowercase, one uppercase, one digit and one symbol.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			lower = true
		case unicode.IsUpper(c):
			upper = true
		case unicode.IsDigit(c):
			digit = true
		default:
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

func validGender(gender string) bool {
	switch gender {
	case models.GenderMale, models.GenderFemale, models.GenderOthers:
		return true
	}
	return false
}

func validPhotoURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, models.ErrValidation)...)
}
