package writer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

// Result is the persisted extraction output for one statement. The field
// names and structure are fixed; downstream consumers parse this shape.
type Result struct {
	TransactionPeriod any                  `json:"transactionPeriod"`
	TotalTransactions int                  `json:"totalTransactions"`
	Transactions      []models.Transaction `json:"transactions"`
}

// NewResult assembles the output document. A missing period serializes as
// an empty object, never null, and an empty transaction list as [].
func NewResult(period *models.TransactionPeriod, transactions []models.Transaction) *Result {
	var p any = struct{}{}
	if period != nil {
		p = period
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return &Result{
		TransactionPeriod: p,
		TotalTransactions: len(transactions),
		Transactions:      transactions,
	}
}

// JSONWriter writes extraction results as indented JSON.
type JSONWriter struct{}

// WriteToFile writes the result to the given path, creating parent
// directories as needed.
func (w *JSONWriter) WriteToFile(path string, result *Result) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write emits the result as two-space-indented JSON. HTML escaping is
// disabled so payee names keep characters like "&" and the rupee sign
// stays readable in the file.
func (w *JSONWriter) Write(out io.Writer, result *Result) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}
