package errs

import "errors"

// Sentinel errors shared between the panel usecases and the HTTP layer
var (
	// Resource errors
	ErrResourceNotFound   = errors.New("resource not found")
	ErrResourceHasRentals = errors.New("resource has linked rentals")

	// Rental errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrPlanNotFound     = errors.New("rental plan not found")
	ErrInvalidStartDate = errors.New("invalid start date")

	// Backend collaborator errors
	ErrBackendUnavailable = errors.New("backend request failed")
)
