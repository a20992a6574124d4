// Package checkout holds the client-side pricing rules applied before an
// order is submitted: promo-code discounts and shipping rates. The backend
// accepts only {items, total}, so this arithmetic lives entirely here.
package checkout

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported promo discount strategies.
type DiscountType string

const (
	// DiscountPercentage applies a percentage-based discount to the subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed applies a fixed monetary discount capped at the subtotal.
	DiscountFixed DiscountType = "fixed"
)

// Rule defines a promo code's discount behaviour.
type Rule struct {
	Code        string
	Type        DiscountType
	Value       decimal.Decimal
	MaxDiscount decimal.Decimal
	Description string
}

// rules is the static promo table. Codes are matched case-insensitively
// after trimming whitespace.
var rules = map[string]Rule{
	"SAVE10": {
		Code:        "SAVE10",
		Type:        DiscountPercentage,
		Value:       decimal.NewFromInt(10),
		Description: "10% off your order",
	},
	"SAVE20": {
		Code:        "SAVE20",
		Type:        DiscountPercentage,
		Value:       decimal.NewFromInt(20),
		Description: "20% off your order",
	},
	"FIRSTORDER": {
		Code:        "FIRSTORDER",
		Type:        DiscountPercentage,
		Value:       decimal.NewFromInt(15),
		MaxDiscount: decimal.NewFromInt(15),
		Description: "15% off your first order, up to $15",
	},
}

// LookupRule returns the rule for a promo code, normalizing case and
// surrounding whitespace. Unknown or blank codes return ok=false.
func LookupRule(code string) (Rule, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return Rule{}, false
	}
	rule, ok := rules[normalized]
	return rule, ok
}
