// Package validation holds pure shape checks for request payloads. All
// functions run before any database access and report field-keyed messages.
package validation

import (
	"math"
	"regexp"
	"strings"

	"github.com/ashishaher15/eduplus-challange/database/model"
)

const (
	nameMinLen     = 2
	nameMaxLen     = 60
	addressMaxLen  = 400
	passwordMinLen = 8
	passwordMaxLen = 64
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps a field name to a human-readable problem with it.
type FieldErrors map[string]string

func (e FieldErrors) Ok() bool {
	return len(e) == 0
}

func ValidateRegistration(name, email, address, password string, role model.Role) FieldErrors {
	errs := FieldErrors{}
	checkName(errs, name)
	checkEmail(errs, email)
	checkAddress(errs, address)
	checkPassword(errs, "password", password)
	if !role.Valid() {
		errs["role"] = "Role must be one of user, admin or store_owner"
	}
	return errs
}

func ValidateLogin(email, password string) FieldErrors {
	errs := FieldErrors{}
	checkEmail(errs, email)
	if password == "" {
		errs["password"] = "Password is required"
	}
	return errs
}

func ValidatePasswordUpdate(userId int, oldPassword, newPassword string) FieldErrors {
	errs := FieldErrors{}
	if userId <= 0 {
		errs["userId"] = "User ID is required"
	}
	if oldPassword == "" {
		errs["oldPassword"] = "Current password is required"
	}
	checkPassword(errs, "newPassword", newPassword)
	return errs
}

// IsValidRating reports whether v is an integral value between 1 and 5.
// JSON numbers arrive as float64, so 4.0 passes and 4.5 does not.
func IsValidRating(v float64) bool {
	return v >= 1 && v <= 5 && v == math.Trunc(v)
}

func checkName(errs FieldErrors, name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len(name) < nameMinLen || len(name) > nameMaxLen {
		errs["name"] = "Name must be between 2 and 60 characters"
	}
}

func checkEmail(errs FieldErrors, email string) {
	if email == "" {
		errs["email"] = "Email is required"
	} else if !emailRe.MatchString(email) {
		errs["email"] = "Email must be a valid email address"
	}
}

func checkAddress(errs FieldErrors, address string) {
	if strings.TrimSpace(address) == "" {
		errs["address"] = "Address is required"
	} else if len(address) > addressMaxLen {
		errs["address"] = "Address must be at most 400 characters"
	}
}

func checkPassword(errs FieldErrors, field, password string) {
	if password == "" {
		errs[field] = "Password is required"
	} else if len(password) < passwordMinLen || len(password) > passwordMaxLen {
		errs[field] = "Password must be between 8 and 64 characters"
	}
}
