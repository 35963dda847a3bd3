package catalog

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field weights for the fuzzy index. Name and brand carry most of the signal,
// the raw supplier name catches concentration/volume suffixes the display
// name drops.
const (
	weightName    = 0.35
	weightBrand   = 0.35
	weightRawName = 0.30
)

// matchThreshold is the maximum combined distance (0 = identical, 1 = no
// resemblance) a product may have and still belong to a query's match set.
const matchThreshold = 0.6

// MinQueryLength is the shortest search text worth matching. Enforcing it is
// the pipeline's job: the index itself will happily score one-letter queries.
const MinQueryLength = 2

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	deaccenter = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

type indexedField struct {
	text   string
	tokens []string
	weight float64
}

type indexEntry struct {
	id     string
	fields [3]indexedField
}

// Index is a read-only fuzzy text index over the repository. It is rebuilt
// whenever the repository changes and replaced wholesale; an existing Index
// stays valid for in-flight reads.
type Index struct {
	entries []indexEntry
}

// BuildIndex constructs the fuzzy index for a repository. A nil or empty
// repository yields an index that matches nothing.
func BuildIndex(repo *Repository) *Index {
	idx := &Index{}
	if repo == nil {
		return idx
	}

	for _, p := range repo.Products() {
		idx.entries = append(idx.entries, indexEntry{
			id: p.ID,
			fields: [3]indexedField{
				newIndexedField(p.Name, weightName),
				newIndexedField(p.Brand, weightBrand),
				newIndexedField(p.RawName, weightRawName),
			},
		})
	}

	return idx
}

func newIndexedField(text string, weight float64) indexedField {
	normText := normalizeText(text)
	return indexedField{text: normText, tokens: tokenize(normText), weight: weight}
}

// Search returns the set of product IDs whose weighted field similarity
// clears the match threshold. Membership is all the pipeline consumes;
// relevance ordering is deliberately not exposed. A nil index matches
// nothing.
func (idx *Index) Search(query string) map[string]struct{} {
	matches := map[string]struct{}{}
	if idx == nil {
		return matches
	}

	queryNorm := normalizeText(query)
	queryTokens := tokenize(queryNorm)
	if queryNorm == "" {
		return matches
	}

	for _, entry := range idx.entries {
		if entry.distance(queryNorm, queryTokens) <= matchThreshold {
			matches[entry.id] = struct{}{}
		}
	}

	return matches
}

// distance combines per-field similarities into one value the way a weighted
// key search does: each field contributes its distance raised to its weight,
// so one strong field (an exact brand hit) is enough to pull the whole
// product under the threshold even when other fields contribute nothing.
func (e *indexEntry) distance(queryNorm string, queryTokens []string) float64 {
	combined := 1.0
	for _, f := range e.fields {
		d := 1 - fieldScore(queryNorm, queryTokens, f)
		if d < 0.001 {
			d = 0.001
		}
		combined *= math.Pow(d, f.weight)
	}
	return combined
}

// fieldScore rates how well the query matches a single field, in [0, 1].
func fieldScore(queryNorm string, queryTokens []string, f indexedField) float64 {
	if f.text == "" {
		return 0
	}
	if strings.Contains(f.text, queryNorm) {
		return 1
	}
	if len(queryTokens) == 0 {
		return diceCoefficient(queryNorm, f.text)
	}

	var sum float64
	for _, qt := range queryTokens {
		sum += bestTokenScore(qt, f.tokens)
	}
	tokenAvg := sum / float64(len(queryTokens))

	return 0.7*tokenAvg + 0.3*diceCoefficient(queryNorm, f.text)
}

// bestTokenScore scores a single query token against every field token and
// keeps the best. Containment is a full hit, one edit is a near hit, anything
// else falls back to bigram overlap.
func bestTokenScore(qt string, fieldTokens []string) float64 {
	best := 0.0
	for _, ft := range fieldTokens {
		var score float64
		switch {
		case qt == ft || strings.Contains(ft, qt):
			score = 1
		case len(qt) >= 3 && levenshtein(qt, ft) <= 1:
			score = 0.85
		default:
			score = diceCoefficient(qt, ft)
		}
		if score > best {
			best = score
			if best == 1 {
				break
			}
		}
	}
	return best
}

// normalizeText lowercases, strips diacritics and collapses everything that
// is not a letter or digit into single spaces.
func normalizeText(input string) string {
	s := strings.ToLower(input)
	if folded, _, err := transform.String(deaccenter, s); err == nil {
		s = folded
	}
	s = reNonAlnum.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func tokenize(normalized string) []string {
	parts := strings.Fields(normalized)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= 2 {
			out = append(out, p)
		}
	}
	return out
}

// diceCoefficient computes bigram overlap between two strings, in [0, 1].
func diceCoefficient(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	aPairs := bigrams(a)
	bPairs := bigrams(b)
	if len(aPairs) == 0 || len(bPairs) == 0 {
		return 0
	}

	bCount := map[string]int{}
	for _, p := range bPairs {
		bCount[p]++
	}
	inter := 0
	for _, p := range aPairs {
		if bCount[p] > 0 {
			inter++
			bCount[p]--
		}
	}

	return float64(2*inter) / float64(len(aPairs)+len(bPairs))
}

func bigrams(s string) []string {
	r := []rune(s)
	if len(r) < 2 {
		return nil
	}
	out := make([]string, 0, len(r)-1)
	for i := 0; i < len(r)-1; i++ {
		out = append(out, string(r[i:i+2]))
	}
	return out
}

// levenshtein computes edit distance over runes.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = minInt(curr[j-1]+1, minInt(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
