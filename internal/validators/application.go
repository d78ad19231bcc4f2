package validators

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field keys match the intake form field names, so the client can attach
// each message to the input that caused it.

const DateLayout = "2006-01-02"

var phonePattern = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)

var genders = map[string]bool{
	"male":   true,
	"female": true,
	"other":  true,
}

var experienceLevels = map[string]bool{
	"beginner":       true,
	"club":           true,
	"representative": true,
}

type ApplicationInput struct {
	ChildName         string
	DateOfBirth       string
	Gender            string
	PhoneNumber       string
	Email             string
	SuburbPostcode    string
	CricketExperience string

	ParentGuardianName  string
	ParentGuardianPhone string
	ParentGuardianEmail string

	ConsentToContact bool
}

// ValidationError carries the full per-field error map back to the caller.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation_failed"
}

// AgeAt returns the whole-year age at now, counting a year only once the
// birthday has passed.
func AgeAt(dob, now time.Time) int {
	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() ||
		(now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}
	return age
}

// ValidateApplication checks every field independently and returns a map
// from field name to message. An empty map means the application may be
// submitted. Nothing short-circuits: a form with five problems reports
// all five.
func ValidateApplication(
	in ApplicationInput,
	now time.Time,
	minAge int,
	maxAge int,
) map[string]string {

	errs := map[string]string{}

	if len(strings.TrimSpace(in.ChildName)) < 2 {
		errs["childName"] = "Player name must be at least 2 characters."
	}

	if dob, err := time.Parse(DateLayout, in.DateOfBirth); err != nil {
		errs["dateOfBirth"] = "Date of birth must be a valid date (YYYY-MM-DD)."
	} else {
		age := AgeAt(dob, now)
		if age < minAge || age > maxAge {
			errs["dateOfBirth"] = fmt.Sprintf(
				"Players must be between %d and %d years old.",
				minAge, maxAge,
			)
		}
	}

	if !genders[in.Gender] {
		errs["gender"] = "Gender must be male, female or other."
	}

	if !isPhoneValid(in.PhoneNumber) {
		errs["phoneNumber"] = "Enter a valid contact number."
	}

	if !IsEmailFormatValid(in.Email) {
		errs["email"] = "Enter a valid email address."
	}

	if strings.TrimSpace(in.SuburbPostcode) == "" {
		errs["suburbPostcode"] = "Suburb or postcode is required."
	}

	if !experienceLevels[in.CricketExperience] {
		errs["cricketExperience"] = "Experience must be beginner, club or representative."
	}

	if len(strings.TrimSpace(in.ParentGuardianName)) < 2 {
		errs["parentGuardianName"] = "Parent or guardian name must be at least 2 characters."
	}

	if !isPhoneValid(in.ParentGuardianPhone) {
		errs["parentGuardianPhone"] = "Enter a valid parent or guardian contact number."
	}

	if !IsEmailFormatValid(in.ParentGuardianEmail) {
		errs["parentGuardianEmail"] = "Enter a valid parent or guardian email address."
	}

	if !in.ConsentToContact {
		errs["consentToContact"] = "Consent to contact is required to join the waitlist."
	}

	return errs
}

// Optional leading +, then digits, spaces, hyphens and parentheses, at
// least 10 characters once whitespace is stripped.
func isPhoneValid(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	stripped := strings.Join(strings.Fields(phone), "")
	return len(stripped) >= 10
}
