package showlist

import (
	"fmt"

	"comedy-houston/internal/models"
)

func formatAmount(v float64, currency string) string {
	if currency == "USD" {
		return fmt.Sprintf("$%.0f", v)
	}
	return fmt.Sprintf("%.0f %s", v, currency)
}

// PriceLabel renders the card price text: "Price TBA" when nothing is
// known, "Free" for zero-priced shows, a range when min and max differ,
// "From $X" otherwise.
func PriceLabel(e models.Event) string {
	min, max := e.PriceMin, e.PriceMax

	if min == nil && max == nil {
		return "Price TBA"
	}
	if min != nil && *min == 0 && (max == nil || *max == 0) {
		return "Free"
	}
	if min != nil && max != nil && *min != *max {
		return fmt.Sprintf("From %s–%s", formatAmount(*min, e.Currency), formatAmount(*max, e.Currency))
	}
	if min != nil {
		return fmt.Sprintf("From %s", formatAmount(*min, e.Currency))
	}
	return fmt.Sprintf("Up to %s", formatAmount(*max, e.Currency))
}
