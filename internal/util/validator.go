package util

import (
	"fmt"
	"time"
)

// ValidatePhone verifies the login identity: exactly 10 digits.
func ValidatePhone(phone string) error {
	if len(phone) != 10 {
		return fmt.Errorf("phone number must be exactly 10 digits, got %d characters", len(phone))
	}
	for _, ch := range phone {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("phone number must contain only digits")
		}
	}
	return nil
}

// ValidateFarmArea verifies the area is a positive number.
func ValidateFarmArea(area float64) error {
	if area <= 0 {
		return fmt.Errorf("farm area must be positive, got %f", area)
	}
	return nil
}

// ValidateDate verifies a YYYY-MM-DD date string and returns the parsed time.
func ValidateDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}
