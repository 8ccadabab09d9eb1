package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocument_CPF(t *testing.T) {
	clean, err := ValidateDocument(DocumentTypeCPF, "111.444.777-35")
	require.NoError(t, err)
	assert.Equal(t, "11144477735", clean)
}

func TestValidateDocument_CPFBadCheckDigit(t *testing.T) {
	_, err := ValidateDocument(DocumentTypeCPF, "11144477736")
	var invalid *InvalidDocumentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, DocumentTypeCPF, invalid.DocType)
}

func TestValidateDocument_CPFWrongLength(t *testing.T) {
	_, err := ValidateDocument(DocumentTypeCPF, "1114447773")
	var invalid *InvalidDocumentError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidateDocument_CPFRepeatedDigits(t *testing.T) {
	_, err := ValidateDocument(DocumentTypeCPF, "111.111.111-11")
	var invalid *InvalidDocumentError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidateDocument_CNPJ(t *testing.T) {
	clean, err := ValidateDocument(DocumentTypeCNPJ, "11.222.333/0001-81")
	require.NoError(t, err)
	assert.Equal(t, "11222333000181", clean)
}

func TestValidateDocument_CNPJBadCheckDigit(t *testing.T) {
	_, err := ValidateDocument(DocumentTypeCNPJ, "11222333000182")
	var invalid *InvalidDocumentError
	assert.True(t, errors.As(err, &invalid))
}

func TestValidateDocument_UnknownType(t *testing.T) {
	_, err := ValidateDocument(DocumentType("RG"), "12345678901")
	var validation *ValidationError
	assert.True(t, errors.As(err, &validation))
}
