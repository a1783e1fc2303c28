package generator

import (
	"fmt"
	"strings"

	"github.com/promptdeck/promptdeck/internal/matchdata"
)

// Header renders the extracted match data block that opens every generated
// prompt. The match is expected to be validated, so the descriptive fields
// always carry at least their placeholder values. Odds lines appear only for
// markets that were actually read from the screenshot.
func Header(m matchdata.Match) string {
	var b strings.Builder

	b.WriteString("**MATCH DATA EXTRACTED FROM IMAGE:**\n\n")
	fmt.Fprintf(&b, "🏆 **MATCH:** %s\n", m.Label())
	fmt.Fprintf(&b, "📅 **DATE:** %s\n", m.MatchDate)
	fmt.Fprintf(&b, "⏰ **TIME:** %s\n", m.MatchTime)
	fmt.Fprintf(&b, "🏆 **LEAGUE:** %s\n", m.League)
	fmt.Fprintf(&b, "📍 **VENUE:** %s\n", m.Venue)
	fmt.Fprintf(&b, "⚽ **SCORE:** %s\n", m.CurrentScore)
	fmt.Fprintf(&b, "🟢 **STATUS:** %s\n", m.MatchStatus)

	b.WriteString("\n💰 **EXTRACTED ODDS DATA:**\n")
	if lines := oddsLines(m); len(lines) > 0 {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("- **Odds:** Could not be automatically extracted - please analyze the latest market data\n")
	}

	return b.String()
}

func oddsLines(m matchdata.Match) []string {
	odds := m.Odds
	if odds == nil {
		return nil
	}

	var lines []string
	if x := odds.Main1X2; x != nil {
		lines = append(lines, fmt.Sprintf("- **1X2 Market:** %s %s | Draw %s | %s %s",
			m.TeamA, x.Home, x.Draw, m.TeamB, x.Away))
	}
	if x := odds.BTTS; x != nil {
		lines = append(lines, fmt.Sprintf("- **BTTS:** Yes %s | No %s", x.Yes, x.No))
	}
	lines = append(lines, totalsLines("Over/Under", odds.TotalGoals)...)
	lines = append(lines, totalsLines(m.TeamA+" Goals", odds.TeamAGoals)...)
	lines = append(lines, totalsLines(m.TeamB+" Goals", odds.TeamBGoals)...)
	if x := odds.Advancement; x != nil {
		lines = append(lines, fmt.Sprintf("- **Advancement:** %s %s | %s %s",
			m.TeamA, x.TeamA, m.TeamB, x.TeamB))
	}
	if x := odds.Combinations; x != nil {
		var combos []string
		if x.HomeAndBTTSYes != "" {
			combos = append(combos, "Home+BTTS "+x.HomeAndBTTSYes)
		}
		if x.DrawAndBTTSYes != "" {
			combos = append(combos, "Draw+BTTS "+x.DrawAndBTTSYes)
		}
		if x.AwayAndBTTSNo != "" {
			combos = append(combos, "Away+BTTS No "+x.AwayAndBTTSNo)
		}
		if len(combos) > 0 {
			lines = append(lines, "- **Combinations:** "+strings.Join(combos, " | "))
		}
	}
	return lines
}

// totalsLines emits one line per goal line where both sides of the market
// were visible. A one-sided line is dropped rather than padded with a filler
// value.
func totalsLines(label string, t *matchdata.MarketTotals) []string {
	if t == nil {
		return nil
	}
	var lines []string
	for _, line := range []struct {
		name        string
		over, under string
	}{
		{"0.5", t.Over05, t.Under05},
		{"1.5", t.Over15, t.Under15},
		{"2.0", t.Over20, t.Under20},
		{"2.5", t.Over25, t.Under25},
	} {
		if line.over != "" && line.under != "" {
			lines = append(lines, fmt.Sprintf("- **%s %s:** %s / %s", label, line.name, line.over, line.under))
		}
	}
	return lines
}
