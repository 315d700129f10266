package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/models"
)

func TestValidateFullName(t *testing.T) {
	assert.Empty(t, ValidateFullName("Asha Rao"))
	assert.Empty(t, ValidateFullName("  Asha  "))

	assert.Equal(t, "Full name is required", ValidateFullName(""))
	assert.Equal(t, "Full name is required", ValidateFullName("   "))
	assert.Equal(t, "Full name must be at least 2 characters", ValidateFullName("A"))
	// one rune, three bytes: the minimum counts characters, not bytes
	assert.Equal(t, "Full name must be at least 2 characters", ValidateFullName("न"))
	assert.Equal(t, "Full name can only contain letters and spaces", ValidateFullName("Asha123"))
	assert.Equal(t, "Full name can only contain letters and spaces", ValidateFullName("Asha-Rao"))
}

func TestValidateEmail(t *testing.T) {
	assert.Empty(t, ValidateEmail("asha@example.com"))
	assert.Empty(t, ValidateEmail("a.b+c@sub.domain.in"))

	assert.Equal(t, "Email is required", ValidateEmail(""))
	assert.NotEmpty(t, ValidateEmail("not-an-email"))
	assert.NotEmpty(t, ValidateEmail("missing@tld"))
	assert.NotEmpty(t, ValidateEmail("spaces in@example.com"))
}

func TestValidatePhone(t *testing.T) {
	assert.Empty(t, ValidatePhone("9876543210"))
	assert.Empty(t, ValidatePhone("98765 43210"))
	assert.Empty(t, ValidatePhone("(987) 654-3210"))

	assert.Equal(t, "Phone number is required", ValidatePhone(""))
	assert.Equal(t, "Phone number must be exactly 10 digits", ValidatePhone("12345"))
	assert.Equal(t, "Phone number must be exactly 10 digits", ValidatePhone("98765432101"))
	assert.Equal(t, "Phone number must start with 6, 7, 8, or 9", ValidatePhone("1234567890"))
	assert.Equal(t, "Phone number must start with 6, 7, 8, or 9", ValidatePhone("5876543210"))
}

func TestValidateAddress(t *testing.T) {
	assert.Empty(t, ValidateAddress("12 Gandhi Road, Jayanagar"))

	assert.Equal(t, "Address is required", ValidateAddress("  "))
	assert.Equal(t, "Address must be at least 10 characters", ValidateAddress("short"))
	// six runes but eighteen bytes: still under the 10-character minimum
	assert.Equal(t, "Address must be at least 10 characters", ValidateAddress("नमस्ते"))
	assert.Empty(t, ValidateAddress("महात्मा गांधी मार्ग ४२, बेंगलूरु"))
}

func TestValidatePincode(t *testing.T) {
	assert.Empty(t, ValidatePincode("560041"))
	assert.Empty(t, ValidatePincode("560 041"))

	assert.Equal(t, "Pincode is required", ValidatePincode(""))
	assert.Equal(t, "Pincode must be exactly 6 digits", ValidatePincode("5600"))
	assert.Equal(t, "Pincode must be exactly 6 digits", ValidatePincode("5600411"))
}

func TestValidateLandmark(t *testing.T) {
	assert.Empty(t, ValidateLandmark(""))
	assert.Empty(t, ValidateLandmark("   "))
	assert.Empty(t, ValidateLandmark("Near the park"))

	assert.Equal(t, "Landmark must be at least 2 characters", ValidateLandmark("X"))
	assert.Equal(t, "Landmark must be at least 2 characters", ValidateLandmark("क"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "scriptalert(1)/script", Sanitize("<script>alert(1)</script>"))
	assert.Equal(t, "alert(1)", Sanitize("javascript:alert(1)"))
	assert.Equal(t, "alert(1)", Sanitize("JaVaScRiPt:alert(1)"))
	assert.Equal(t, `img src=x "x"`, Sanitize(`<img src=x onerror="x">`))
	assert.Equal(t, "plain text stays", Sanitize("plain text stays"))
}

func TestValidateCheckoutForm(t *testing.T) {
	t.Run("valid form has no errors", func(t *testing.T) {
		form := models.CheckoutFormData{
			FullName:    "Asha Rao",
			Email:       "asha@example.com",
			PhoneNumber: "9876543210",
			Address:     "12 Gandhi Road, Jayanagar",
			Landmark:    "Near the park",
			Pincode:     "560041",
		}

		errs := ValidateCheckoutForm(form)

		assert.Empty(t, errs)
	})

	t.Run("only failing fields appear in the map", func(t *testing.T) {
		form := models.CheckoutFormData{
			FullName:    "Asha Rao",
			Email:       "bad",
			PhoneNumber: "12345",
			Address:     "12 Gandhi Road, Jayanagar",
			Pincode:     "560041",
		}

		errs := ValidateCheckoutForm(form)

		assert.Len(t, errs, 2)
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "phone_number")
		assert.NotContains(t, errs, "full_name")
	})

	t.Run("empty landmark is allowed", func(t *testing.T) {
		form := models.CheckoutFormData{
			FullName:    "Asha Rao",
			Email:       "asha@example.com",
			PhoneNumber: "9876543210",
			Address:     "12 Gandhi Road, Jayanagar",
			Landmark:    "",
			Pincode:     "560041",
		}

		assert.Empty(t, ValidateCheckoutForm(form))
	})
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "98765 43210", FormatPhoneNumber("9876543210"))
	assert.Equal(t, "98765 43210", FormatPhoneNumber("(987) 654-3210"))
	assert.Equal(t, "12345", FormatPhoneNumber("12345"))

	assert.Equal(t, "560 041", FormatPincode("560041"))
	assert.Equal(t, "5600", FormatPincode("5600"))
}
