package extractor

import (
	"math"
	"sort"
	"strings"

	"github.com/insightdelivered/gpay-extractor/internal/models"
)

const (
	// lineTolerance is the maximum vertical distance, in position units,
	// between a glyph's rounded top and a bucket's key for the glyph to
	// join that line. Absorbs sub-pixel rendering jitter.
	lineTolerance = 3

	// gapThreshold is the horizontal gap, in position units, beyond which
	// a single space is inserted between consecutive glyphs. Google Pay
	// statements position glyphs without explicit space characters.
	gapThreshold = 2
)

// lineBucket collects the glyphs judged to share one typographic baseline.
// The key is the rounded top of the first glyph seen for the line and never
// changes afterwards, so membership stays reproducible regardless of how
// many glyphs accumulate.
type lineBucket struct {
	key    int
	glyphs []models.Glyph
}

// ReconstructLines groups one page's glyphs into lines and rebuilds their
// text, top to bottom. Glyph stream order does not need to be reading
// order. Empty pages yield an empty slice.
func ReconstructLines(glyphs []models.Glyph) []models.TextLine {
	var buckets []*lineBucket
	for _, g := range glyphs {
		key := int(math.Round(g.Top))
		b := findBucket(buckets, key)
		if b == nil {
			b = &lineBucket{key: key}
			buckets = append(buckets, b)
		}
		b.glyphs = append(b.glyphs, g)
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].key < buckets[j].key })

	lines := make([]models.TextLine, 0, len(buckets))
	for _, b := range buckets {
		text := b.assemble()
		if text == "" {
			continue
		}
		lines = append(lines, models.TextLine{Text: text, Key: b.key})
	}
	return lines
}

// findBucket returns the first open bucket whose original key lies within
// lineTolerance of the glyph's key, or nil. Linear scan: statement pages
// carry a few dozen lines at most.
func findBucket(buckets []*lineBucket, key int) *lineBucket {
	for _, b := range buckets {
		if intAbs(b.key-key) <= lineTolerance {
			return b
		}
	}
	return nil
}

// assemble sorts the bucket's glyphs left to right and concatenates them,
// inserting one space wherever the horizontal gap between the previous
// glyph's end and the next glyph's start exceeds gapThreshold.
func (b *lineBucket) assemble() string {
	sort.Slice(b.glyphs, func(i, j int) bool { return b.glyphs[i].X < b.glyphs[j].X })

	var sb strings.Builder
	var prevEnd float64
	for i, g := range b.glyphs {
		if i > 0 && g.X-prevEnd > gapThreshold {
			sb.WriteByte(' ')
		}
		sb.WriteString(g.Chars)
		prevEnd = g.End()
	}
	return strings.TrimSpace(sb.String())
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
