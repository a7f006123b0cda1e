package validators

import (
	"fmt"
	"net/url"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	apperrors "task-market.com/task-market/internal/errors"
	model "task-market.com/task-market/internal/models"
)

// Rule returns a non-empty message when its constraint is violated.
type Rule func() string

// First runs rules in order and reports the first violation.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if msg := rule(); msg != "" {
			return apperrors.Invalid(msg)
		}
	}
	return nil
}

func Required(field, value string) Rule {
	return func() string {
		if value == "" {
			return field + " is required"
		}
		return ""
	}
}

func LengthBetween(field, value string, min, max int) Rule {
	return func() string {
		n := utf8.RuneCountInString(value)
		if n < min || n > max {
			return fmt.Sprintf("%s must be between %d and %d characters", field, min, max)
		}
		return ""
	}
}

func MinLength(field, value string, min int) Rule {
	return func() string {
		if utf8.RuneCountInString(value) < min {
			return fmt.Sprintf("%s must be at least %d characters", field, min)
		}
		return ""
	}
}

// MaxBytes bounds the encoded length, not the character count.
func MaxBytes(field, value string, max int) Rule {
	return func() string {
		if len(value) > max {
			return fmt.Sprintf("%s must be at most %d bytes", field, max)
		}
		return ""
	}
}

func HTTPURL(field, value string) Rule {
	return func() string {
		u, err := url.ParseRequestURI(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return field + " must be a valid http(s) URL"
		}
		return ""
	}
}

func PositiveMoney(field string, value decimal.Decimal) Rule {
	return func() string {
		if !model.ValidReward(value) {
			return field + " must be positive with at most two decimal places"
		}
		return ""
	}
}

func PositiveID(field string, value int64) Rule {
	return func() string {
		if value <= 0 {
			return field + " must be a positive integer"
		}
		return ""
	}
}
