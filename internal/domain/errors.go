package domain

import "fmt"

// The error types below form the engine's taxonomy. Validation, conflict,
// referential-integrity and not-found errors are expected conditions the
// caller corrects; external-service errors are retryable by re-invocation;
// data-integrity errors are fatal and must be escalated, never defaulted.

// ValidationError reports bad input shape or range.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InvalidDateRangeError rejects a rental period whose end precedes its start.
type InvalidDateRangeError struct {
	StartDate string
	EndDate   string
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf("end date %s is before start date %s", e.EndDate, e.StartDate)
}

// InvalidDocumentError reports a CPF/CNPJ that failed normalization or
// check-digit verification.
type InvalidDocumentError struct {
	DocType DocumentType
	Reason  string
}

func (e *InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.DocType, e.Reason)
}

// ConflictError reports a uniqueness or state conflict.
type ConflictError struct {
	Resource string
	Detail   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Resource, e.Detail)
}

// DuplicateSerialError names the serial number that already exists.
type DuplicateSerialError struct {
	SerialNumber string
}

func (e *DuplicateSerialError) Error() string {
	return fmt.Sprintf("equipment with serial number %q already exists", e.SerialNumber)
}

// EquipmentUnavailableError names the unit that blocked a booking.
type EquipmentUnavailableError struct {
	EquipmentID string
	Status      EquipmentStatus
}

func (e *EquipmentUnavailableError) Error() string {
	return fmt.Sprintf("equipment %s is not available (status %s)", e.EquipmentID, e.Status)
}

// NotFoundError reports an unknown identifier.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ReferentialIntegrityError blocks deletion of a row still referenced by
// rentals.
type ReferentialIntegrityError struct {
	Resource string
	ID       string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %s is referenced by one or more rentals and cannot be deleted", e.Resource, e.ID)
}

// ExternalServiceError wraps a failure or timeout from a collaborator
// (geocoding, routing, storage, mail).
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s service failed: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }

// GeocodeFailedError reports that an address could not be resolved to
// coordinates, either because nothing matched or the call timed out.
type GeocodeFailedError struct {
	Address string
	Err     error
}

func (e *GeocodeFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not geocode %q: %v", e.Address, e.Err)
	}
	return fmt.Sprintf("no coordinates found for %q", e.Address)
}

func (e *GeocodeFailedError) Unwrap() error { return e.Err }

// RouteUnavailableError reports that the routing collaborator could not
// produce a driving distance.
type RouteUnavailableError struct {
	Err error
}

func (e *RouteUnavailableError) Error() string {
	return fmt.Sprintf("routing service unavailable: %v", e.Err)
}

func (e *RouteUnavailableError) Unwrap() error { return e.Err }

// DataIntegrityError is fatal: stored data violates the engine's own
// invariants, e.g. a malformed identifier sequence.
type DataIntegrityError struct {
	Detail string
	Err    error
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("data integrity violation: %s", e.Detail)
}

func (e *DataIntegrityError) Unwrap() error { return e.Err }
