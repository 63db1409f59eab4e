package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

// ErrChecksFailed is returned by callers that treat a failed verification
// as a distinct exit condition from fatal processing errors.
var ErrChecksFailed = errors.New("verification checks failed")

// tolerance for comparing extracted totals against the header. Absorbs
// float rounding in the printed amounts, not real discrepancies.
var tolerance = decimal.NewFromFloat(0.02)

// Report collects the outcome of every verification check, in the order
// the checks ran.
type Report struct {
	Passed   []string
	Warnings []string
	Failed   []string
}

// OK reports whether every failure-class check passed. Warnings never
// affect it.
func (r *Report) OK() bool {
	return len(r.Failed) == 0
}

// Run checks the extracted transactions against each other and, when a
// period header was found, against its printed totals. Every check runs
// regardless of earlier outcomes so a single report reflects the complete
// health of the extraction.
func Run(transactions []models.Transaction, period *models.TransactionPeriod) *Report {
	rep := &Report{}
	checkCompleteness(rep, transactions)
	checkUniqueness(rep, transactions)
	checkTotals(rep, transactions, period)
	return rep
}

func checkCompleteness(rep *Report, transactions []models.Transaction) {
	missing := 0
	for _, t := range transactions {
		if t.UPITransactionID == "" {
			missing++
		}
	}
	if missing > 0 {
		rep.Failed = append(rep.Failed,
			fmt.Sprintf("%d transaction(s) missing UPI Transaction ID", missing))
		return
	}
	rep.Passed = append(rep.Passed,
		fmt.Sprintf("All %d transactions have UPI Transaction IDs", len(transactions)))
}

func checkUniqueness(rep *Report, transactions []models.Transaction) {
	seen := make(map[string]struct{})
	collected := 0
	for _, t := range transactions {
		if t.UPITransactionID == "" {
			continue
		}
		collected++
		seen[t.UPITransactionID] = struct{}{}
	}
	if len(seen) == collected {
		rep.Passed = append(rep.Passed,
			fmt.Sprintf("All %d UPI Transaction IDs are unique", len(seen)))
		return
	}
	rep.Failed = append(rep.Failed,
		fmt.Sprintf("%d duplicate UPI Transaction ID(s) found", collected-len(seen)))
}

func checkTotals(rep *Report, transactions []models.Transaction, period *models.TransactionPeriod) {
	if period == nil {
		rep.Warnings = append(rep.Warnings,
			"No transaction period header found in PDF; skipping totals reconciliation")
		return
	}

	var (
		sentCount, topupCount, receivedCount int
		sentTotal                            = decimal.Zero
		topupTotal                           = decimal.Zero
		receivedTotal                        = decimal.Zero
	)
	for _, t := range transactions {
		switch {
		case strings.HasPrefix(t.Payee, "Received from"):
			receivedCount++
			receivedTotal = receivedTotal.Add(t.Amount)
		case strings.HasPrefix(t.Payee, "Top-up to"):
			topupCount++
			topupTotal = topupTotal.Add(t.Amount)
		default:
			// Residual bucket: anything that is not a top-up or an
			// incoming payment counts toward the sent total.
			sentCount++
			sentTotal = sentTotal.Add(t.Amount)
		}
	}

	if sentTotal.Sub(period.TotalSent).Abs().LessThan(tolerance) {
		rep.Passed = append(rep.Passed,
			fmt.Sprintf("Sent total matches PDF header: %s == %s",
				formatAmount(sentTotal), formatAmount(period.TotalSent)))
	} else {
		diff := sentTotal.Sub(period.TotalSent).Abs()
		rep.Failed = append(rep.Failed,
			fmt.Sprintf("Sent total mismatch: extracted %s vs PDF header %s (diff: %s)",
				formatAmount(sentTotal), formatAmount(period.TotalSent), formatAmount(diff)))
	}

	if receivedTotal.Sub(period.TotalReceived).Abs().LessThan(tolerance) {
		rep.Passed = append(rep.Passed,
			fmt.Sprintf("Received total matches PDF header: %s == %s",
				formatAmount(receivedTotal), formatAmount(period.TotalReceived)))
	} else {
		rep.Failed = append(rep.Failed,
			fmt.Sprintf("Received total mismatch: extracted %s vs PDF header %s",
				formatAmount(receivedTotal), formatAmount(period.TotalReceived)))
	}

	rep.Passed = append(rep.Passed,
		fmt.Sprintf("Breakdown: %d sent (%s) | %d top-ups (%s) | %d received (%s)",
			sentCount, formatAmount(sentTotal),
			topupCount, formatAmount(topupTotal),
			receivedCount, formatAmount(receivedTotal)))
}
