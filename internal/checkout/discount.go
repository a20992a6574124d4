package checkout

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ApplyPromo returns the discount for the given code on the given subtotal.
// Unknown or blank codes yield a zero discount rather than an error: a bad
// promo code is a non-event at checkout, not a failure.
func ApplyPromo(code string, subtotal decimal.Decimal) decimal.Decimal {
	rule, ok := LookupRule(code)
	if !ok {
		return decimal.Zero
	}
	return apply(rule, subtotal)
}

// apply calculates the discount amount for a rule, clamped to [0, subtotal]
// and to the rule's MaxDiscount when one is set.
func apply(rule Rule, subtotal decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch rule.Type {
	case DiscountPercentage:
		amount = subtotal.Mul(rule.Value).Div(hundred)
	case DiscountFixed:
		amount = rule.Value
	default:
		return decimal.Zero
	}

	if rule.MaxDiscount.IsPositive() {
		amount = decimal.Min(amount, rule.MaxDiscount)
	}
	amount = decimal.Min(amount, subtotal)
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount.Round(2)
}
