package detector

import (
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Normalize repairs invalid UTF-8 and applies Unicode NFC so that
// canonically-equivalent inputs segment into the same grapheme clusters
// the corpus was built over. It does not fold case, strip marks, or touch
// width — any of those would change cluster boundaries the corpus relies on
func Normalize(s string) string {
	if !strings.ContainsRune(s, '�') && utf8ValidRepairless(s) {
		return norm.NFC.String(s)
	}
	return norm.NFC.String(strings.ToValidUTF8(s, ""))
}

// utf8ValidRepairless is a cheap pre-check to skip the allocation in
// strings.ToValidUTF8 for the common case of already-valid input
func utf8ValidRepairless(s string) bool {
	return strings.ToValidUTF8(s, "") == s
}

// Segment splits query into its ordered sequence of extended grapheme
// clusters per UAX #29. The corpus is built the same way; code-point or byte
// iteration would silently disagree with it on scripts using combining marks
func Segment(query string) []string {
	if query == "" {
		return nil
	}
	norm := Normalize(query)
	gr := uniseg.NewGraphemes(norm)
	out := make([]string, 0, len(norm))
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

// NGrams returns the ordered, overlapping n-grams of size k over graphemes.
// Nᵢ = g_i..g_{i+k-1} for 0 <= i <= m-k. If m < k the result is empty
func NGrams(graphemes []string, k int) []string {
	m := len(graphemes)
	if k <= 0 || m < k {
		return nil
	}
	out := make([]string, 0, m-k+1)
	var b strings.Builder
	for i := 0; i+k <= m; i++ {
		b.Reset()
		for j := 0; j < k; j++ {
			b.WriteString(graphemes[i+j])
		}
		out = append(out, b.String())
	}
	return out
}
