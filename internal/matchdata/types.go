// Package matchdata defines the transient match records recovered from
// screenshot extraction and the validation applied before prompt generation.
package matchdata

// Match describes one sporting fixture found in a user-supplied image.
// It lives only long enough to be validated, deduplicated and turned into
// a prompt; it is never persisted.
type Match struct {
	TeamA        string `json:"teamA"`
	TeamB        string `json:"teamB"`
	MatchDate    string `json:"matchDate,omitempty"`
	MatchTime    string `json:"matchTime,omitempty"`
	League       string `json:"league,omitempty"`
	Venue        string `json:"venue,omitempty"`
	CurrentScore string `json:"currentScore,omitempty"`
	MatchStatus  string `json:"matchStatus,omitempty"`
	Sport        string `json:"sport,omitempty"`
	Odds         *Odds  `json:"odds,omitempty"`
}

// Odds holds the named betting markets visible in a screenshot. Every leaf
// is a decimal odds string such as "1.64"; an empty string means the market
// outcome was not visible. A nil market pointer means the whole market was
// absent from the image.
type Odds struct {
	Main1X2      *Market1X2    `json:"main1X2,omitempty"`
	BTTS         *MarketYesNo  `json:"btts,omitempty"`
	TotalGoals   *MarketTotals `json:"totalGoals,omitempty"`
	TeamAGoals   *MarketTotals `json:"teamAGoals,omitempty"`
	TeamBGoals   *MarketTotals `json:"teamBGoals,omitempty"`
	Advancement  *MarketSides  `json:"advancement,omitempty"`
	Combinations *MarketCombos `json:"combinations,omitempty"`
}

// Market1X2 is the main match-result market.
type Market1X2 struct {
	Home string `json:"home,omitempty"`
	Draw string `json:"draw,omitempty"`
	Away string `json:"away,omitempty"`
}

// MarketYesNo covers binary markets such as both-teams-to-score.
type MarketYesNo struct {
	Yes string `json:"yes,omitempty"`
	No  string `json:"no,omitempty"`
}

// MarketTotals covers over/under goal lines.
type MarketTotals struct {
	Over05  string `json:"over05,omitempty"`
	Under05 string `json:"under05,omitempty"`
	Over15  string `json:"over15,omitempty"`
	Under15 string `json:"under15,omitempty"`
	Over20  string `json:"over20,omitempty"`
	Under20 string `json:"under20,omitempty"`
	Over25  string `json:"over25,omitempty"`
	Under25 string `json:"under25,omitempty"`
}

// MarketSides covers two-sided markets such as tournament advancement.
type MarketSides struct {
	TeamA string `json:"teamA,omitempty"`
	TeamB string `json:"teamB,omitempty"`
}

// MarketCombos covers combination bets pairing the 1X2 result with BTTS.
type MarketCombos struct {
	HomeAndBTTSYes string `json:"homeAndBttsYes,omitempty"`
	DrawAndBTTSYes string `json:"drawAndBttsYes,omitempty"`
	AwayAndBTTSNo  string `json:"awayAndBttsNo,omitempty"`
}

// Label returns the human-readable "A vs B" form used in progress reporting
// and prompt titles.
func (m Match) Label() string {
	return m.TeamA + " vs " + m.TeamB
}
