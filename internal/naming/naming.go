// Package naming maps arbitrary colors to the closest entry in a static
// table of named reference colors.
//
// The table (~150 entries, embedded at build time) carries an English and a
// Vietnamese name per entry. Matching is a linear scan by Euclidean distance
// in RGB space; ties keep the earliest table entry, so duplicate hex values
// (e.g. Aqua and Cyan) resolve to whichever appears first.
package naming

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math"

	"github.com/tdhoang/color-tools-mcp/internal/colorspace"
)

//go:embed colors.json
var colorData []byte

// Entry is one named reference color.
type Entry struct {
	Hex    string `json:"hex"`     // Reference value "#RRGGBB"
	Name   string `json:"name"`    // English name
	NameVi string `json:"name_vi"` // Vietnamese name
}

// Namer resolves colors against a reference table.
type Namer struct {
	entries []Entry
	rgb     []colorspace.RGB // parsed per entry, same order
}

// New builds a Namer from the embedded reference table.
func New() (*Namer, error) {
	return NewFromJSON(colorData)
}

// NewFromJSON builds a Namer from a JSON array of entries. Useful for tests
// and for callers that carry their own palette. The table must contain at
// least one entry.
func NewFromJSON(data []byte) (*Namer, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse color table: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("color table is empty")
	}
	n := &Namer{
		entries: entries,
		rgb:     make([]colorspace.RGB, len(entries)),
	}
	for i, e := range entries {
		n.rgb[i] = colorspace.ParseHex(e.Hex)
	}
	return n, nil
}

// Len returns the number of entries in the table.
func (n *Namer) Len() int { return len(n.entries) }

// NearestEntry returns the table entry closest to hex by Euclidean RGB
// distance. The scan keeps the first minimum, so earlier entries win ties.
//
// Malformed hex input is coerced to black rather than rejected, matching
// the converter's lenient parser; callers that need strictness should
// validate with colorspace.ValidHex first.
func (n *Namer) NearestEntry(hex string) Entry {
	target := colorspace.ParseHex(hex)

	best := 0
	bestDist := math.MaxFloat64
	for i, ref := range n.rgb {
		d := distance(target, ref)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return n.entries[best]
}

// Nearest returns the name of the closest reference color in the requested
// language ("en" or "vi"). Unknown language tags fall back to English.
func (n *Namer) Nearest(hex, lang string) string {
	e := n.NearestEntry(hex)
	if lang == "vi" && e.NameVi != "" {
		return e.NameVi
	}
	return e.Name
}

func distance(a, b colorspace.RGB) float64 {
	dr := float64(a.R - b.R)
	dg := float64(a.G - b.G)
	db := float64(a.B - b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}
