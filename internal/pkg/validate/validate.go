package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/offermart/marketplace-backend/internal/pkg/errors"
)

// Pure field checks used by command/query constructors. Each check returns
// nil or an error wrapping ErrInvalidArgument; constructors report the first
// violation and refuse to produce a value.

func NotBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s must not be blank", apperrors.ErrInvalidArgument, field)
	}
	return nil
}

func MaxLen(field, value string, max int) error {
	if len(value) > max {
		return fmt.Errorf("%w: %s exceeds %d characters", apperrors.ErrInvalidArgument, field, max)
	}
	return nil
}

func Positive(field string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrInvalidArgument, field)
	}
	return nil
}

func PositiveInt(field string, value int) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be positive", apperrors.ErrInvalidArgument, field)
	}
	return nil
}

func IntRange(field string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%w: %s must be between %d and %d", apperrors.ErrInvalidArgument, field, min, max)
	}
	return nil
}

func MaxItems(field string, count, max int) error {
	if count > max {
		return fmt.Errorf("%w: %s exceeds %d items", apperrors.ErrInvalidArgument, field, max)
	}
	return nil
}

func RequiredID(field string, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s is required", apperrors.ErrInvalidArgument, field)
	}
	return nil
}

// DateString checks a calendar date in 2006-01-02 form.
func DateString(field, value string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s is not a valid date (want YYYY-MM-DD)", apperrors.ErrInvalidArgument, field)
	}
	return nil
}
