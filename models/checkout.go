package models

import "encoding/json"

// CheckoutFormData is the raw checkout form as submitted by the customer.
type CheckoutFormData struct {
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	Address              string `json:"address"`
	Landmark             string `json:"landmark"`
	Pincode              string `json:"pincode"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

// DeliveryAddress is the persisted form of a validated checkout form.
type DeliveryAddress struct {
	FullName             string `json:"full_name"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	Address              string `json:"address"`
	Landmark             string `json:"landmark"`
	Pincode              string `json:"pincode"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

func (f CheckoutFormData) ToDeliveryAddress() DeliveryAddress {
	return DeliveryAddress{
		FullName:             f.FullName,
		Email:                f.Email,
		PhoneNumber:          f.PhoneNumber,
		Address:              f.Address,
		Landmark:             f.Landmark,
		Pincode:              f.Pincode,
		DeliveryInstructions: f.DeliveryInstructions,
	}
}

func (a DeliveryAddress) ToFormData() CheckoutFormData {
	return CheckoutFormData{
		FullName:             a.FullName,
		Email:                a.Email,
		PhoneNumber:          a.PhoneNumber,
		Address:              a.Address,
		Landmark:             a.Landmark,
		Pincode:              a.Pincode,
		DeliveryInstructions: a.DeliveryInstructions,
	}
}

var addressFields = []string{
	"full_name", "email", "phone_number", "address",
	"landmark", "pincode", "delivery_instructions",
}

// ParseStoredAddress decodes a persisted delivery address. All seven
// string fields must be present; anything else is treated as absent,
// never an error.
func ParseStoredAddress(data []byte) (*DeliveryAddress, bool) {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, false
	}

	for _, field := range addressFields {
		if _, ok := raw[field].(string); !ok {
			return nil, false
		}
	}

	var addr DeliveryAddress
	if err := json.Unmarshal(data, &addr); err != nil {
		return nil, false
	}
	return &addr, true
}
