package verify

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// formatAmount renders a rupee amount with thousands grouping and two
// decimals, e.g. ₹782,334.17. Statement headers use this grouping in
// their printed totals.
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return amountPrinter.Sprintf("₹%.2f", f)
}

// Render formats the report for human inspection on stdout.
func (r *Report) Render() string {
	rule := strings.Repeat("=", 60)
	lines := []string{"", rule, "VERIFICATION REPORT", rule}
	for _, msg := range r.Passed {
		lines = append(lines, "  ✓ PASS  "+msg)
	}
	for _, msg := range r.Warnings {
		lines = append(lines, "  ⚠ WARN  "+msg)
	}
	for _, msg := range r.Failed {
		lines = append(lines, "  ✗ FAIL  "+msg)
	}
	lines = append(lines, rule)
	if r.OK() {
		lines = append(lines, "  ALL CHECKS PASSED")
	} else {
		lines = append(lines, fmt.Sprintf("  %d CHECK(S) FAILED", len(r.Failed)))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}
