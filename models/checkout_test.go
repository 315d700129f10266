package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleAddress() DeliveryAddress {
	return DeliveryAddress{
		FullName:             "Asha Rao",
		Email:                "asha@example.com",
		PhoneNumber:          "9876543210",
		Address:              "12 Gandhi Road, Jayanagar",
		Landmark:             "Near the park",
		Pincode:              "560041",
		DeliveryInstructions: "Ring twice",
	}
}

func TestAddressFormDataRoundTrip(t *testing.T) {
	addr := sampleAddress()

	roundTripped := addr.ToFormData().ToDeliveryAddress()

	assert.Equal(t, addr, roundTripped)
}

func TestParseStoredAddressValid(t *testing.T) {
	data, err := json.Marshal(sampleAddress())
	assert.NoError(t, err)

	parsed, ok := ParseStoredAddress(data)

	assert.True(t, ok)
	assert.Equal(t, sampleAddress(), *parsed)
}

func TestParseStoredAddressMissingField(t *testing.T) {
	raw := map[string]interface{}{
		"full_name":    "Asha Rao",
		"email":        "asha@example.com",
		"phone_number": "9876543210",
		// address, landmark, pincode, delivery_instructions absent
	}
	data, _ := json.Marshal(raw)

	parsed, ok := ParseStoredAddress(data)

	assert.False(t, ok)
	assert.Nil(t, parsed)
}

func TestParseStoredAddressWrongType(t *testing.T) {
	raw := map[string]interface{}{
		"full_name":             "Asha Rao",
		"email":                 "asha@example.com",
		"phone_number":          9876543210, // number, not string
		"address":               "12 Gandhi Road",
		"landmark":              "",
		"pincode":               "560041",
		"delivery_instructions": "",
	}
	data, _ := json.Marshal(raw)

	_, ok := ParseStoredAddress(data)

	assert.False(t, ok)
}

func TestParseStoredAddressGarbage(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("not json"),
		[]byte("null"),
		[]byte(`"a string"`),
		[]byte("{}"),
	} {
		parsed, ok := ParseStoredAddress(data)
		assert.False(t, ok)
		assert.Nil(t, parsed)
	}
}

func TestCustomizationValidate(t *testing.T) {
	assert.True(t, SugarCustomization(WithPalmSugar).Validate())
	assert.True(t, SpiceCustomization(ExtraSpicy).Validate())
	assert.True(t, NoCustomization().Validate())

	assert.False(t, Customization{Kind: CustomizationSugar, Sugar: "Chocolate"}.Validate())
	assert.False(t, Customization{Kind: CustomizationSpice, Spice: "Nuclear"}.Validate())
	assert.False(t, Customization{Kind: CustomizationSugar, Sugar: WithSugar, Spice: MediumSpicy}.Validate())
}

func TestCustomizationKindFor(t *testing.T) {
	assert.Equal(t, CustomizationSpice, CustomizationKindFor("masala-powders"))
	assert.Equal(t, CustomizationSpice, CustomizationKindFor("homemade-pickles"))
	assert.Equal(t, CustomizationSugar, CustomizationKindFor("baby-nutrition"))
	assert.Equal(t, CustomizationSugar, CustomizationKindFor("adult-powders"))
	assert.Equal(t, CustomizationSugar, CustomizationKindFor("special-care"))
}

func TestFindMenuItem(t *testing.T) {
	item, ok := FindMenuItem("rasam-powder")
	assert.True(t, ok)
	assert.Equal(t, "Rasam Powder", item.Name)
	assert.Equal(t, 650.0, item.Price)

	_, ok = FindMenuItem("no-such-item")
	assert.False(t, ok)
}
