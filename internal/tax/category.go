package tax

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the employment category that selects the exemption threshold.
type Category string

const (
	// Salaried individuals receive the higher exemption threshold.
	Salaried Category = "Salaried"
	// Other covers every non-salaried taxpayer.
	Other Category = "Others"
)

var (
	salariedExemption = decimal.NewFromInt(1_275_000)
	otherExemption    = decimal.NewFromInt(1_200_000)
)

// Categories lists the supported categories in presentation order.
func Categories() []Category {
	return []Category{Salaried, Other}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	return c == Salaried || c == Other
}

func (c Category) String() string { return string(c) }

// ParseCategory maps a user supplied tag onto a Category.
func ParseCategory(value string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "salaried":
		return Salaried, nil
	case "other", "others":
		return Other, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, value)
	}
}

// Exemption returns the income threshold at or below which no tax is owed.
func Exemption(c Category) decimal.Decimal {
	if c == Salaried {
		return salariedExemption
	}
	return otherExemption
}
