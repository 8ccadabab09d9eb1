package service

import (
	"context"

	"concrental-backend/internal/domain"
	"concrental-backend/internal/geo"
	"concrental-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

type customerService struct {
	repo     repository.CustomerRepository
	geocoder Geocoder
	// locality is appended to customer addresses before geocoding,
	// e.g. "Curitiba, Brazil".
	locality string
	validate *validator.Validate
}

func NewCustomerService(repo repository.CustomerRepository, geocoder Geocoder, locality string) CustomerService {
	return &customerService{
		repo:     repo,
		geocoder: geocoder,
		locality: locality,
		validate: validator.New(),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, accountID int32, req CreateCustomerRequest) (*domain.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "customer", Reason: err.Error()}
	}
	if !req.DocumentType.Valid() {
		return nil, &domain.ValidationError{Field: "document_type", Reason: "must be CPF or CNPJ"}
	}
	// Check digits are verified before any persistence attempt.
	docNumber, err := domain.ValidateDocument(req.DocumentType, req.DocumentNumber)
	if err != nil {
		return nil, err
	}

	c := &domain.Customer{
		AccountID:      accountID,
		FullName:       req.FullName,
		CompanyName:    req.CompanyName,
		PhoneNumber:    req.PhoneNumber,
		EmailAddress:   req.EmailAddress,
		Address:        req.Address,
		DocumentType:   req.DocumentType,
		DocumentNumber: docNumber,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, accountID int32, customerID string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, accountID, customerID)
}

func (s *customerService) UpdateCustomer(ctx context.Context, accountID int32, customerID string, req UpdateCustomerRequest) (*domain.Customer, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, &domain.ValidationError{Field: "customer", Reason: err.Error()}
	}

	c, err := s.repo.GetByID(ctx, accountID, customerID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		c.FullName = *req.FullName
	}
	if req.CompanyName != nil {
		c.CompanyName = *req.CompanyName
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.EmailAddress != nil {
		c.EmailAddress = *req.EmailAddress
	}
	if req.Address != nil {
		c.Address = *req.Address
	}
	if req.DocumentType != nil || req.DocumentNumber != nil {
		docType := c.DocumentType
		if req.DocumentType != nil {
			docType = *req.DocumentType
		}
		raw := c.DocumentNumber
		if req.DocumentNumber != nil {
			raw = *req.DocumentNumber
		}
		docNumber, err := domain.ValidateDocument(docType, raw)
		if err != nil {
			return nil, err
		}
		c.DocumentType = docType
		c.DocumentNumber = docNumber
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, accountID int32, customerID string) error {
	return s.repo.Delete(ctx, accountID, customerID)
}

func (s *customerService) ListCustomers(ctx context.Context, accountID int32) ([]domain.Customer, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

// GeocodeAndStore resolves the customer's address and persists the
// coordinates. Geocoding happens before any write; a failed lookup leaves
// the customer untouched.
func (s *customerService) GeocodeAndStore(ctx context.Context, accountID int32, customerID string) (geo.Coordinates, error) {
	c, err := s.repo.GetByID(ctx, accountID, customerID)
	if err != nil {
		return geo.Coordinates{}, err
	}
	if c.Address == "" {
		return geo.Coordinates{}, &domain.ValidationError{Field: "address", Reason: "customer has no address to geocode"}
	}

	coords, err := s.geocoder.Geocode(ctx, c.Address+", "+s.locality)
	if err != nil {
		return geo.Coordinates{}, err
	}
	if err := s.repo.UpdateCoordinates(ctx, accountID, customerID, coords.Latitude, coords.Longitude); err != nil {
		return geo.Coordinates{}, err
	}
	return coords, nil
}

func (s *customerService) AttachDocument(ctx context.Context, accountID int32, customerID, url string) error {
	return s.repo.SetDocumentPath(ctx, accountID, customerID, url)
}
