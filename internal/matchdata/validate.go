package matchdata

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrNoValidMatches is returned when every extracted record was rejected.
// Callers must surface this to the user rather than proceeding silently.
var ErrNoValidMatches = errors.New("no valid matches after validation")

// Placeholder values substituted for optional fields so that generation
// never has to branch on missing data.
const (
	DefaultTime   = "TBD"
	DefaultLeague = "Unknown League"
	DefaultVenue  = "Unknown Venue"
	DefaultScore  = "Not Started"
	DefaultStatus = "Scheduled"
)

// Validate filters malformed records, fills placeholder defaults and removes
// duplicate fixtures. It is pure: the input slice is not modified.
//
// Two records are duplicates when their unordered, case-insensitive
// {teamA, teamB} pair and their match date coincide; the first occurrence
// wins. Dates are compared after defaulting, so two records that both omit
// the date still collapse.
func Validate(raw []Match) ([]Match, error) {
	seen := make(map[string]struct{}, len(raw))
	valid := make([]Match, 0, len(raw))

	for _, m := range raw {
		m.TeamA = strings.TrimSpace(m.TeamA)
		m.TeamB = strings.TrimSpace(m.TeamB)
		if utf8.RuneCountInString(m.TeamA) < 2 || utf8.RuneCountInString(m.TeamB) < 2 {
			continue
		}

		normalize(&m)

		key := dedupKey(m)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		valid = append(valid, m)
	}

	if len(valid) == 0 {
		return nil, ErrNoValidMatches
	}
	return valid, nil
}

func normalize(m *Match) {
	if m.MatchDate == "" {
		m.MatchDate = time.Now().Format("2006-01-02")
	}
	if m.MatchTime == "" {
		m.MatchTime = DefaultTime
	}
	if m.League == "" {
		m.League = DefaultLeague
	}
	if m.Venue == "" {
		m.Venue = DefaultVenue
	}
	if m.CurrentScore == "" {
		m.CurrentScore = DefaultScore
	}
	if m.MatchStatus == "" {
		m.MatchStatus = DefaultStatus
	}
	if m.Odds == nil {
		m.Odds = &Odds{}
	}
}

func dedupKey(m Match) string {
	a := strings.ToLower(m.TeamA)
	b := strings.ToLower(m.TeamB)
	if b < a {
		a, b = b, a
	}
	return a + "|" + b + "|" + m.MatchDate
}
