package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts are emitted as plain JSON numbers, matching the persisted
	// output shape downstream consumers already depend on.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultGlyphWidth is used for gap computation when a glyph carries no
// usable width of its own.
const DefaultGlyphWidth = 5

// Glyph is one positioned text run from a PDF page. The PDF library may
// emit runs of more than one character; each run is treated as a single
// unit for line reconstruction. Glyphs are never mutated.
type Glyph struct {
	Chars string  // the run's text
	X     float64 // horizontal start position
	W     float64 // approximate width, 0 when the PDF omits it
	Top   float64 // vertical top position, small values near the page top
}

// End returns the glyph's horizontal end position, falling back to
// DefaultGlyphWidth when the width is missing.
func (g Glyph) End() float64 {
	w := g.W
	if w <= 0 {
		w = DefaultGlyphWidth
	}
	return g.X + w
}

// TextLine is one reconstructed line of statement text together with the
// vertical bucket key it was grouped under.
type TextLine struct {
	Text string
	Key  int
}

// TransactionPeriod is the statement's period header: the date range it
// covers and the aggregate totals printed on it. At most one per document.
type TransactionPeriod struct {
	Start         string          `json:"start"`
	End           string          `json:"end"`
	TotalSent     decimal.Decimal `json:"totalSent"`
	TotalReceived decimal.Decimal `json:"totalReceived"`
}

// Transaction is one extracted statement entry. Date keeps the document's
// native format, with the time appended when the metadata line supplied
// one. UPITransactionID is empty when no metadata line was found.
type Transaction struct {
	Date             string          `json:"date"`
	Payee            string          `json:"payee"`
	Amount           decimal.Decimal `json:"amount"`
	UPITransactionID string          `json:"upiTransactionId"`
}
