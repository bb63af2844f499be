/*
errors.go - Error taxonomy for the engine and its collaborators

Three categories:
  1. Validation errors  - malformed or missing required input; rejected
     before any computation runs, never silently coerced.
  2. Data inconsistency - the event logs contradict the record model
     (foreign references, negative payment amounts); computation aborts
     rather than producing a misleading balance.
  3. Conflict errors    - storage-layer races and duplicates (occupancy
     compare-and-set, duplicate rent-change instants).
*/
package rent

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the root of all input validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrDataInconsistency is the root of event-log contradictions.
	ErrDataInconsistency = errors.New("data inconsistency")

	// ErrUnitOccupied is returned when an assignment loses the occupancy
	// compare-and-set race.
	ErrUnitOccupied = errors.New("unit already occupied")

	// ErrDuplicateRentChange is returned for a second rent change at the
	// same effective instant.
	ErrDuplicateRentChange = errors.New("duplicate rent change for effective date")

	// ErrTenantNotFound is returned when a referenced tenant does not exist.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrPropertyNotFound is returned when a referenced property does not exist.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrUnitNotFound is returned when a referenced unit does not exist.
	ErrUnitNotFound = errors.New("unit not found")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError reports a field-level input problem.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// DataInconsistencyError reports event logs that contradict the record
// model. The balance computation is aborted when one is raised.
type DataInconsistencyError struct {
	TenantID TenantID
	Reason   string
}

func (e *DataInconsistencyError) Error() string {
	return fmt.Sprintf("inconsistent data for tenant %s: %s", e.TenantID, e.Reason)
}

func (e *DataInconsistencyError) Unwrap() error { return ErrDataInconsistency }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation reports whether the error is due to invalid caller input.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsInconsistency reports whether the error is an event-log contradiction.
func IsInconsistency(err error) bool { return errors.Is(err, ErrDataInconsistency) }

// IsConflict reports whether the error is a storage-level race or duplicate.
func IsConflict(err error) bool {
	return errors.Is(err, ErrUnitOccupied) || errors.Is(err, ErrDuplicateRentChange)
}

// IsNotFound reports whether the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrPropertyNotFound) ||
		errors.Is(err, ErrUnitNotFound)
}
