package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateBodyPhoneNumber(t *testing.T) {
	type body struct {
		Phone string `validate:"omitempty,phone_number"`
	}

	tests := []struct {
		name  string
		phone string
		valid bool
	}{
		{"empty allowed", "", true},
		{"international", "+49 170 1234567", true},
		{"dashed", "0170-123-4567", true},
		{"letters rejected", "call me", false},
		{"too short", "12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages := ValidateBody(body{Phone: tt.phone})
			if tt.valid {
				assert.Empty(t, messages)
			} else {
				assert.NotEmpty(t, messages)
			}
		})
	}
}

func TestValidateBodySalaryBand(t *testing.T) {
	type body struct {
		SalaryBand string `validate:"omitempty,salary_band"`
	}

	assert.Empty(t, ValidateBody(body{SalaryBand: "B"}))
	assert.Empty(t, ValidateBody(body{SalaryBand: "C2"}))
	assert.Empty(t, ValidateBody(body{SalaryBand: "A10"}))
	assert.NotEmpty(t, ValidateBody(body{SalaryBand: "band-3"}))
	assert.NotEmpty(t, ValidateBody(body{SalaryBand: "b2"}))
}
