package errs

// Sentinel errors shared by the command and query layers of every service.
// Handlers translate them into HTTP statuses.
var (
	ErrCarNotFound     = New("car not found")
	ErrRentalNotFound  = New("rental not found")
	ErrPaymentNotFound = New("payment not found")

	ErrForbidden = New("forbidden")

	// Conflict: a state precondition does not hold (rental not IN_PROGRESS,
	// car already reserved, duplicate key).
	ErrConflict = New("conflict")
	// Build with CarUnavailable so the error also matches ErrConflict.
	ErrCarUnavailable = New("car is not available")

	ErrInvalidPeriod    = New("invalid rental period")
	ErrDomainValidation = New("domain validation failed")

	ErrUpstreamFailure = New("upstream service failure")

	ErrIdempotencyInProgress = New("idempotency in progress")
	ErrIdempotencyMismatch   = New("idempotency key reused with a different request")

	ErrDatabaseOperationFailed = New("database operation failed")
)

// CarUnavailable marks err with ErrCarUnavailable and ErrConflict. A nil err
// yields a fresh error carrying both marks.
func CarUnavailable(err error) error {
	if err == nil {
		err = New("car is not available")
	}
	return Mark(Mark(err, ErrCarUnavailable), ErrConflict)
}
