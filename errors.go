package ephemeris

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTarget is returned when a body is unsupported by the requested
	// theory, or when the body/observer combination is physically meaningless.
	ErrInvalidTarget = errors.New("ephemeris: invalid target")

	// ErrInvalidDateRange is returned when the epoch falls outside a theory's
	// validity window. Use errors.As to retrieve the *DateRangeError carrying
	// the window itself.
	ErrInvalidDateRange = errors.New("ephemeris: epoch outside theory validity range")

	// ErrConvergence is returned when the light-time iteration exceeds its cap.
	ErrConvergence = errors.New("ephemeris: light-time iteration did not converge")

	// ErrTableMissing is returned when a required term table was not loaded
	// into the TableProvider.
	ErrTableMissing = errors.New("ephemeris: term table not loaded")
)

// DateRangeError reports the valid Julian day window of the theory that
// rejected the epoch.
type DateRangeError struct {
	Body     Body
	JD       float64
	From, To float64
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("ephemeris: %s at JD %.1f outside valid range [%.1f, %.1f]", e.Body, e.JD, e.From, e.To)
}

// Unwrap makes errors.Is(err, ErrInvalidDateRange) hold.
func (e *DateRangeError) Unwrap() error { return ErrInvalidDateRange }
