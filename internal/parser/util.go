package parser

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Transaction kinds derived from the detail-line phrase.
const (
	kindSent     = "sent"
	kindTopUp    = "top-up"
	kindReceived = "received"
	kindUnknown  = "unknown"
)

// parseAmount converts a rupee token like "₹7,82,334.17" to 782334.17.
// Whole-rupee tokens ("₹101") carry no fraction.
func parseAmount(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", raw, err)
	}
	return d, nil
}

// extractPayee splits a detail phrase like "Paid to NAVEEN KUMAR S" into
// the display payee and the transaction kind. "Paid to" is stripped;
// "Top-up to" and "Received from" stay in the display name because
// reconciliation classifies transactions by that stored prefix. Unmatched
// phrases come back unchanged as kindUnknown.
func extractPayee(detail string) (string, string) {
	switch {
	case strings.HasPrefix(detail, "Paid to "):
		return strings.TrimSpace(detail[len("Paid to "):]), kindSent
	case strings.HasPrefix(detail, "Top-up to "):
		return "Top-up to " + strings.TrimSpace(detail[len("Top-up to "):]), kindTopUp
	case strings.HasPrefix(detail, "Received from "):
		return "Received from " + strings.TrimSpace(detail[len("Received from "):]), kindReceived
	default:
		return detail, kindUnknown
	}
}
