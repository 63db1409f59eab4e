package verify

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(payee, amount, upiID string) models.Transaction {
	return models.Transaction{
		Date:             "01 Aug, 2025 06:20 PM",
		Payee:            payee,
		Amount:           dec(amount),
		UPITransactionID: upiID,
	}
}

func TestRun_EmptySetNoPeriod(t *testing.T) {
	rep := Run(nil, nil)

	assert.True(t, rep.OK())
	require.Len(t, rep.Passed, 2)
	assert.Equal(t, "All 0 transactions have UPI Transaction IDs", rep.Passed[0])
	assert.Equal(t, "All 0 UPI Transaction IDs are unique", rep.Passed[1])
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "No transaction period header found")
	assert.Empty(t, rep.Failed)
}

func TestRun_MissingIDs(t *testing.T) {
	rep := Run([]models.Transaction{
		txn("A", "100", "1"),
		txn("B", "200", ""),
		txn("C", "300", ""),
	}, nil)

	assert.False(t, rep.OK())
	require.NotEmpty(t, rep.Failed)
	assert.Equal(t, "2 transaction(s) missing UPI Transaction ID", rep.Failed[0])
	// Uniqueness still runs over the collected IDs.
	assert.Contains(t, rep.Passed, "All 1 UPI Transaction IDs are unique")
}

func TestRun_DuplicateIDs(t *testing.T) {
	rep := Run([]models.Transaction{
		txn("A", "100", "42"),
		txn("B", "200", "42"),
	}, nil)

	assert.False(t, rep.OK())
	assert.Contains(t, rep.Failed, "1 duplicate UPI Transaction ID(s) found")
}

func TestRun_TotalsWithinTolerance(t *testing.T) {
	period := &models.TransactionPeriod{
		Start:         "01 August 2025",
		End:           "31 August 2025",
		TotalSent:     dec("1000.01"),
		TotalReceived: dec("500.00"),
	}
	rep := Run([]models.Transaction{
		txn("NAVEEN KUMAR S", "600.00", "1"),
		txn("GROCERY MART", "400.00", "2"),
		txn("Received from RAJESH KUMAR", "500.00", "3"),
	}, period)

	assert.True(t, rep.OK(), "diff of 0.01 is inside the tolerance")
	assert.Contains(t, rep.Passed, "Sent total matches PDF header: ₹1,000.00 == ₹1,000.01")
	assert.Contains(t, rep.Passed, "Received total matches PDF header: ₹500.00 == ₹500.00")
}

func TestRun_ToleranceIsStrict(t *testing.T) {
	period := &models.TransactionPeriod{
		TotalSent:     dec("1000.02"),
		TotalReceived: dec("0"),
	}
	rep := Run([]models.Transaction{
		txn("A", "1000.00", "1"),
	}, period)

	assert.False(t, rep.OK(), "diff of exactly 0.02 must fail")
	require.Len(t, rep.Failed, 1)
	assert.Equal(t,
		"Sent total mismatch: extracted ₹1,000.00 vs PDF header ₹1,000.02 (diff: ₹0.02)",
		rep.Failed[0])
}

func TestRun_ReceivedMismatch(t *testing.T) {
	period := &models.TransactionPeriod{
		TotalSent:     dec("0"),
		TotalReceived: dec("750"),
	}
	rep := Run([]models.Transaction{
		txn("Received from X", "500", "1"),
	}, period)

	assert.False(t, rep.OK())
	assert.Contains(t, rep.Failed,
		"Received total mismatch: extracted ₹500.00 vs PDF header ₹750.00")
}

func TestRun_BreakdownClassification(t *testing.T) {
	// Top-ups and received are keyed off the stored payee prefix;
	// everything else, including unrecognized payees, counts as sent.
	period := &models.TransactionPeriod{
		TotalSent:     dec("300"),
		TotalReceived: dec("50"),
	}
	rep := Run([]models.Transaction{
		txn("NAVEEN KUMAR S", "100", "1"),
		txn("Cashback reward", "200", "2"),
		txn("Top-up to Google Pay Wallet", "1000", "3"),
		txn("Received from RAJESH", "50", "4"),
	}, period)

	assert.True(t, rep.OK())
	assert.Contains(t, rep.Passed,
		"Breakdown: 2 sent (₹300.00) | 1 top-ups (₹1,000.00) | 1 received (₹50.00)")
}

func TestRender(t *testing.T) {
	rep := &Report{
		Passed:   []string{"check one"},
		Warnings: []string{"heads up"},
		Failed:   []string{"check two"},
	}
	out := rep.Render()

	assert.Contains(t, out, "VERIFICATION REPORT")
	assert.Contains(t, out, "  ✓ PASS  check one")
	assert.Contains(t, out, "  ⚠ WARN  heads up")
	assert.Contains(t, out, "  ✗ FAIL  check two")
	assert.Contains(t, out, "  1 CHECK(S) FAILED")
	assert.Equal(t, 4, strings.Count(out, strings.Repeat("=", 60)))
}

func TestRender_AllPassed(t *testing.T) {
	rep := &Report{Passed: []string{"fine"}}
	assert.Contains(t, rep.Render(), "  ALL CHECKS PASSED")
}
