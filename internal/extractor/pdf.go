package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

// letterHeight is the fallback page height (US Letter, in points) for pages
// whose MediaBox cannot be resolved. The value only shifts the vertical
// keys uniformly; within-page grouping and ordering are unaffected.
const letterHeight = 792

// ExtractLines reads a PDF and reconstructs its text lines, pages
// concatenated in document order. The PDF library panics on some malformed
// files, so the whole walk runs under a recover.
func ExtractLines(filePath string) (lines []models.TextLine, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines = append(lines, ReconstructLines(pageGlyphs(page))...)
	}
	return lines, nil
}

// pageGlyphs converts one page's positioned text runs into glyphs. The
// library reports Y from the page bottom; top positions are recovered
// against the page height so that ascending keys read top to bottom.
// Whitespace-only runs are dropped (spacing is re-derived from gaps).
func pageGlyphs(page pdf.Page) []models.Glyph {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	height := pageHeight(page)
	glyphs := make([]models.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		glyphs = append(glyphs, models.Glyph{
			Chars: t.S,
			X:     t.X,
			W:     t.W,
			Top:   height - t.Y,
		})
	}
	return glyphs
}

// pageHeight resolves the page's MediaBox height. MediaBox is inheritable,
// so the Parent chain is walked when the page dict itself omits it.
func pageHeight(page pdf.Page) float64 {
	for v := page.V; !v.IsNull(); v = v.Key("Parent") {
		if mb := v.Key("MediaBox"); !mb.IsNull() && mb.Len() == 4 {
			return mb.Index(3).Float64() - mb.Index(1).Float64()
		}
	}
	return letterHeight
}
