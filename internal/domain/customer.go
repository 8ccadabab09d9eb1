package domain

import "time"

// DocumentType distinguishes the Brazilian taxpayer registries: CPF for
// individuals, CNPJ for companies.
type DocumentType string

const (
	DocumentTypeCPF  DocumentType = "CPF"
	DocumentTypeCNPJ DocumentType = "CNPJ"
)

type Customer struct {
	CustomerID   string       `json:"customer_id"`
	AccountID    int32        `json:"account_id"`
	FullName     string       `json:"full_name"`
	CompanyName  string       `json:"company_name,omitempty"`
	PhoneNumber  string       `json:"phone_number,omitempty"`
	EmailAddress string       `json:"email_address"`
	Address      string       `json:"address"`
	DocumentType DocumentType `json:"document_type"`
	// DocumentNumber is stored normalized, digits only.
	DocumentNumber string    `json:"document_number"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	DocumentPath   *string   `json:"document_path,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}

func (t DocumentType) Valid() bool {
	return t == DocumentTypeCPF || t == DocumentTypeCNPJ
}
