package extractor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/promptdeck/promptdeck/internal/matchdata"
)

// The model is asked for a bare JSON array but routinely wraps it in prose,
// markdown fences, or mangles the syntax. ParseResponse runs a cascade of
// increasingly permissive strategies over the raw text; each stage is a pure
// function so it can be tested and fuzzed in isolation.

const excerptLimit = 500

// ParseError reports that every parsing strategy came up empty. It carries a
// truncated excerpt of the raw response for user diagnosis.
type ParseError struct {
	Excerpt string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("no match data recoverable from response: %q", e.Excerpt)
}

// ParseResponse recovers match records from a free-form model response.
func ParseResponse(raw string) ([]matchdata.Match, error) {
	clean := StripCodeFences(raw)

	if matches, ok := parseArray(clean); ok {
		return matches, nil
	}

	if sub, ok := FirstArraySubstring(clean); ok {
		if matches, ok := parseArray(sub); ok {
			return matches, nil
		}
		if matches, ok := parseArray(RepairJSON(sub)); ok {
			return matches, nil
		}
	}

	if matches := ParseObjectFragments(clean); len(matches) > 0 {
		return matches, nil
	}

	if matches := ParseVersusText(clean); len(matches) > 0 {
		return matches, nil
	}

	if matches := ParseCapitalizedPairs(clean); len(matches) > 0 {
		return matches, nil
	}

	return nil, &ParseError{Excerpt: truncate(strings.TrimSpace(raw), excerptLimit)}
}

var codeFenceRe = regexp.MustCompile("```[a-zA-Z]*")

// StripCodeFences removes markdown code-fence markers from the text.
func StripCodeFences(s string) string {
	return strings.TrimSpace(codeFenceRe.ReplaceAllString(s, ""))
}

// parseArray attempts a strict parse of the whole string as a JSON array of
// match records, accepting only a non-empty result.
func parseArray(s string) ([]matchdata.Match, bool) {
	var matches []matchdata.Match
	if err := json.Unmarshal([]byte(s), &matches); err != nil {
		return nil, false
	}
	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}

// FirstArraySubstring locates the first bracket-balanced JSON-array-shaped
// substring in the text.
func FirstArraySubstring(s string) (string, bool) {
	start := strings.IndexByte(s, '[')
	if start == -1 {
		return "", false
	}

	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

var (
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	quoteNormalizer = strings.NewReplacer("“", `"`, "”", `"`, "„", `"`, "’", "'", "‘", "'")
)

// RepairJSON applies light syntactic repair to almost-JSON: normalizes smart
// quote characters, quotes bare object keys, and strips trailing commas.
// The result is not guaranteed to parse; it gets one more attempt.
func RepairJSON(s string) string {
	s = quoteNormalizer.Replace(s)
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = trailingCommaRe.ReplaceAllString(s, `$1`)
	return s
}

// Flat (non-nested) brace-delimited fragments; nested odds objects disqualify
// a fragment, which is acceptable for this salvage path.
var objectFragmentRe = regexp.MustCompile(`\{[^{}]*\}`)

// ParseObjectFragments scans for individual JSON object fragments anywhere in
// the text and keeps those that parse and carry both team names.
func ParseObjectFragments(s string) []matchdata.Match {
	var matches []matchdata.Match
	for _, frag := range objectFragmentRe.FindAllString(s, -1) {
		var m matchdata.Match
		if err := json.Unmarshal([]byte(frag), &m); err != nil {
			continue
		}
		if m.TeamA == "" || m.TeamB == "" {
			continue
		}
		matches = append(matches, m)
	}
	return matches
}

var versusRe = regexp.MustCompile(`(?i)^(.+?\S)\s+(?:vs\.?|versus|@|-)\s+(\S.+)$`)

// ParseVersusText scans plain prose for "<Name> vs <Name>"-style lines and
// synthesizes minimal match records (team names only, no odds) from them.
func ParseVersusText(s string) []matchdata.Match {
	var matches []matchdata.Match
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*•0123456789. \t"))
		if line == "" || strings.ContainsAny(line, "{}[]") {
			continue
		}
		groups := versusRe.FindStringSubmatch(line)
		if groups == nil {
			continue
		}
		// The line sides may carry surrounding prose; keep only the name
		// group directly adjacent to the separator.
		teamA, teamB := trailingName(groups[1]), leadingName(groups[2])
		if !plausibleTeamName(teamA) || !plausibleTeamName(teamB) {
			continue
		}
		matches = append(matches, matchdata.Match{TeamA: teamA, TeamB: teamB})
	}
	return matches
}

var capitalizedGroupRe = regexp.MustCompile(`[A-Z][A-Za-z0-9'.-]*(?:[ \t][A-Z][A-Za-z0-9'.-]*)*`)

// ParseCapitalizedPairs is the last-resort heuristic: it collects sequences
// of capitalized word groups and pairs them consecutively into speculative
// matches.
func ParseCapitalizedPairs(s string) []matchdata.Match {
	var names []string
	for _, group := range capitalizedGroupRe.FindAllString(s, -1) {
		group = cleanTeamName(group)
		if plausibleTeamName(group) {
			names = append(names, group)
		}
	}

	var matches []matchdata.Match
	for i := 0; i+1 < len(names); i += 2 {
		matches = append(matches, matchdata.Match{TeamA: names[i], TeamB: names[i+1]})
	}
	return matches
}

// trailingName keeps the run of capitalized (or numeric) words at the end of
// the fragment, e.g. "tonight's big game is Real Madrid" yields "Real Madrid".
func trailingName(s string) string {
	words := strings.Fields(s)
	i := len(words)
	for i > 0 && nameWord(words[i-1]) {
		i--
	}
	return cleanTeamName(strings.Join(words[i:], " "))
}

// leadingName keeps the run of capitalized (or numeric) words at the start of
// the fragment.
func leadingName(s string) string {
	words := strings.Fields(s)
	j := 0
	for j < len(words) && nameWord(words[j]) {
		j++
	}
	return cleanTeamName(strings.Join(words[:j], " "))
}

func nameWord(w string) bool {
	w = strings.Trim(w, `"',:;.()`)
	if w == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(w)
	return unicode.IsUpper(r) || unicode.IsDigit(r)
}

func cleanTeamName(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"',:;.`)
}

// plausibleTeamName filters out fragments that cannot be a participant name:
// too short, too long, or with no letters at all.
func plausibleTeamName(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < 2 || n > 60 {
		return false
	}
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
