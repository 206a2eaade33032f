// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type documentHolder struct {
	Document int `validate:"required,document"`
}

func TestDocumentValidator(t *testing.T) {
	cases := []struct {
		document int
		valid    bool
	}{
		{1234567, true},
		{99999999, true},
		{123456, false}, // six digits
		{-1234567, false},
		{0, false},
	}

	for _, tc := range cases {
		err := ValidateStruct(&documentHolder{Document: tc.document})
		if tc.valid {
			assert.NoError(t, err, "document %d", tc.document)
		} else {
			assert.Error(t, err, "document %d", tc.document)
		}
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Name  string `validate:"required,max=10"`
		Email string `validate:"required,email"`
	}

	err := ValidateStruct(&form{Name: "", Email: "not-an-email"})
	assert.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "required", fields[0].Tag)
	assert.Equal(t, "Name is required", fields[0].Message)
	assert.Equal(t, "email", fields[1].Field)
	assert.Equal(t, "Invalid email format", fields[1].Message)
}

func TestGetValidationErrorsNonValidatorError(t *testing.T) {
	fields := GetValidationErrors(assert.AnError)
	assert.Empty(t, fields)
}
