package domain

import "strings"

// ValidateDocument strips formatting from a CPF/CNPJ number and verifies its
// check digits. It returns the normalized digit string, or an
// InvalidDocumentError before anything touches the store.
func ValidateDocument(docType DocumentType, raw string) (string, error) {
	clean := normalizeDigits(raw)
	switch docType {
	case DocumentTypeCPF:
		if len(clean) != 11 {
			return "", &InvalidDocumentError{DocType: docType, Reason: "CPF must have 11 digits"}
		}
		if !validCheckDigits(clean, cpfWeights) {
			return "", &InvalidDocumentError{DocType: docType, Reason: "CPF check digits do not match"}
		}
	case DocumentTypeCNPJ:
		if len(clean) != 14 {
			return "", &InvalidDocumentError{DocType: docType, Reason: "CNPJ must have 14 digits"}
		}
		if !validCheckDigits(clean, cnpjWeights) {
			return "", &InvalidDocumentError{DocType: docType, Reason: "CNPJ check digits do not match"}
		}
	default:
		return "", &ValidationError{Field: "document_type", Reason: "must be CPF or CNPJ"}
	}
	if allSameDigit(clean) {
		return "", &InvalidDocumentError{DocType: docType, Reason: "repeated-digit numbers are not valid"}
	}
	return clean, nil
}

var (
	cpfWeights = [][]int{
		{10, 9, 8, 7, 6, 5, 4, 3, 2},
		{11, 10, 9, 8, 7, 6, 5, 4, 3, 2},
	}
	cnpjWeights = [][]int{
		{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
		{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2},
	}
)

func normalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validCheckDigits applies the standard mod-11 verification: each weight row
// covers the digits preceding one check digit.
func validCheckDigits(digits string, weightRows [][]int) bool {
	for _, weights := range weightRows {
		sum := 0
		for i, w := range weights {
			sum += int(digits[i]-'0') * w
		}
		check := 11 - sum%11
		if check >= 10 {
			check = 0
		}
		if check != int(digits[len(weights)]-'0') {
			return false
		}
	}
	return true
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
