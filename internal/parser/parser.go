package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

// Line shapes found in Google Pay statements.
var (
	// "01 Aug, 2025  Paid to NAVEEN KUMAR S  ₹630"
	detailPattern = regexp.MustCompile(`^(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec),\s*\d{4})\s+(Paid to .+?|Top-up to .+?|Received from .+?)\s+(₹[\d,]+(?:\.\d+)?)\s*$`)

	// "06:20 PM  UPI Transaction ID: 521314926792"
	metadataPattern = regexp.MustCompile(`^(\d{1,2}:\d{2}\s*(?:AM|PM))\s+UPI Transaction ID:\s*(\d+)\s*$`)

	// "01 August 2025 - 31 January 2026  ₹7,82,334.17  ₹101"
	periodPattern = regexp.MustCompile(`^(\d{1,2}\s+\w+\s+\d{4})\s*[-–]\s*(\d{1,2}\s+\w+\s+\d{4})\s+(₹[\d,]+(?:\.\d+)?)\s+(₹[\d,]+(?:\.\d+)?)\s*$`)
)

// Parse scans the document's reconstructed lines and returns the statement
// period header (nil when the document carries none) and every transaction
// in document order.
func Parse(lines []models.TextLine) (*models.TransactionPeriod, []models.Transaction) {
	return findPeriod(lines), scanTransactions(lines)
}

// findPeriod returns the first line matching the period-header shape. A
// statement carries at most one, so scanning stops at the first match.
func findPeriod(lines []models.TextLine) *models.TransactionPeriod {
	for _, line := range lines {
		m := periodPattern.FindStringSubmatch(line.Text)
		if m == nil {
			continue
		}
		sent, err := parseAmount(m[3])
		if err != nil {
			continue
		}
		received, err := parseAmount(m[4])
		if err != nil {
			continue
		}
		return &models.TransactionPeriod{
			Start:         strings.TrimSpace(m[1]),
			End:           strings.TrimSpace(m[2]),
			TotalSent:     sent,
			TotalReceived: received,
		}
	}
	return nil
}

// scanState drives the detail/metadata pairing. A detail line is held
// pending until the next line either supplies its time and UPI ID or turns
// out to be something else entirely.
type scanState int

const (
	awaitingDetail scanState = iota
	awaitingMetadata
)

// pending is a detail line waiting for its metadata line.
type pending struct {
	date   string
	payee  string
	amount decimal.Decimal
}

// finish builds the transaction. With a time token the date becomes
// "{date} {time}"; without one the date stands alone and the UPI ID stays
// empty.
func (p pending) finish(timeToken, upiID string) models.Transaction {
	date := p.date
	if timeToken != "" {
		date = p.date + " " + timeToken
	}
	return models.Transaction{
		Date:             date,
		Payee:            p.payee,
		Amount:           p.amount,
		UPITransactionID: upiID,
	}
}

// scanTransactions walks the lines with a single forward cursor and no
// backtracking. Lines matching neither shape are skipped; a line that
// fails the metadata check is re-examined as a detail candidate rather
// than consumed.
func scanTransactions(lines []models.TextLine) []models.Transaction {
	var (
		txns  []models.Transaction
		state = awaitingDetail
		held  pending
	)

	i := 0
	for i < len(lines) {
		text := lines[i].Text
		switch state {
		case awaitingDetail:
			if m := detailPattern.FindStringSubmatch(text); m != nil {
				amount, err := parseAmount(m[3])
				if err == nil {
					payee, _ := extractPayee(strings.TrimSpace(m[2]))
					held = pending{
						date:   strings.TrimSpace(m[1]),
						payee:  payee,
						amount: amount,
					}
					state = awaitingMetadata
				}
			}
			i++
		case awaitingMetadata:
			if m := metadataPattern.FindStringSubmatch(text); m != nil {
				txns = append(txns, held.finish(strings.TrimSpace(m[1]), strings.TrimSpace(m[2])))
				i++
			} else {
				txns = append(txns, held.finish("", ""))
			}
			state = awaitingDetail
		}
	}
	if state == awaitingMetadata {
		txns = append(txns, held.finish("", ""))
	}
	return txns
}
