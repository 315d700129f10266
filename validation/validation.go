// Package validation holds the pure checkout-form field validators.
// Each validator returns "" for valid input or a human-readable message;
// none of them touch I/O.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"storefront-service/models"
)

var (
	nameRe       = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitRe   = regexp.MustCompile(`\D`)
	jsPrefixRe   = regexp.MustCompile(`(?i)javascript:`)
	eventAttrRe  = regexp.MustCompile(`(?i)on\w+=`)
	leadDigitRe  = regexp.MustCompile(`^[6-9]`)
	angleBracket = strings.NewReplacer("<", "", ">", "")
)

func ValidateFullName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Full name is required"
	}
	if utf8.RuneCountInString(trimmed) < 2 {
		return "Full name must be at least 2 characters"
	}
	if !nameRe.MatchString(trimmed) {
		return "Full name can only contain letters and spaces"
	}
	return ""
}

func ValidateEmail(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}
	if !emailRe.MatchString(trimmed) {
		return "Please enter a valid email address"
	}
	return ""
}

func ValidatePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return "Phone number is required"
	}

	digitsOnly := nonDigitRe.ReplaceAllString(trimmed, "")
	if len(digitsOnly) != 10 {
		return "Phone number must be exactly 10 digits"
	}
	if !leadDigitRe.MatchString(digitsOnly) {
		return "Phone number must start with 6, 7, 8, or 9"
	}
	return ""
}

func ValidateAddress(address string) string {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "Address is required"
	}
	if utf8.RuneCountInString(trimmed) < 10 {
		return "Address must be at least 10 characters"
	}
	return ""
}

func ValidatePincode(pincode string) string {
	trimmed := strings.TrimSpace(pincode)
	if trimmed == "" {
		return "Pincode is required"
	}

	digitsOnly := nonDigitRe.ReplaceAllString(trimmed, "")
	if len(digitsOnly) != 6 {
		return "Pincode must be exactly 6 digits"
	}
	return ""
}

// ValidateLandmark accepts empty input; a present landmark needs 2+ chars.
func ValidateLandmark(landmark string) string {
	trimmed := strings.TrimSpace(landmark)
	if trimmed != "" && utf8.RuneCountInString(trimmed) < 2 {
		return "Landmark must be at least 2 characters"
	}
	return ""
}

// Sanitize strips angle brackets, javascript: prefixes and inline event
// handler attributes. A minimal allow-nothing-dangerous filter, not an
// HTML sanitizer.
func Sanitize(input string) string {
	out := angleBracket.Replace(input)
	out = jsPrefixRe.ReplaceAllString(out, "")
	out = eventAttrRe.ReplaceAllString(out, "")
	return out
}

// ValidateCheckoutForm runs every field validator and returns a map of
// field name to message for the fields that failed. An empty map means
// the form is valid.
func ValidateCheckoutForm(data models.CheckoutFormData) map[string]string {
	errors := make(map[string]string)

	if msg := ValidateFullName(data.FullName); msg != "" {
		errors["full_name"] = msg
	}
	if msg := ValidateEmail(data.Email); msg != "" {
		errors["email"] = msg
	}
	if msg := ValidatePhone(data.PhoneNumber); msg != "" {
		errors["phone_number"] = msg
	}
	if msg := ValidateAddress(data.Address); msg != "" {
		errors["address"] = msg
	}
	if msg := ValidateLandmark(data.Landmark); msg != "" {
		errors["landmark"] = msg
	}
	if msg := ValidatePincode(data.Pincode); msg != "" {
		errors["pincode"] = msg
	}

	return errors
}

// FormatPhoneNumber groups a 10-digit number as "12345 67890" for display.
func FormatPhoneNumber(phone string) string {
	digitsOnly := nonDigitRe.ReplaceAllString(phone, "")
	if len(digitsOnly) == 10 {
		return fmt.Sprintf("%s %s", digitsOnly[:5], digitsOnly[5:])
	}
	return phone
}

// FormatPincode groups a 6-digit pincode as "123 456" for display.
func FormatPincode(pincode string) string {
	digitsOnly := nonDigitRe.ReplaceAllString(pincode, "")
	if len(digitsOnly) == 6 {
		return fmt.Sprintf("%s %s", digitsOnly[:3], digitsOnly[3:])
	}
	return pincode
}
