package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `[{"teamA":"A"}]`, StripCodeFences("```json\n[{\"teamA\":\"A\"}]\n```"))
	assert.Equal(t, "plain text", StripCodeFences("plain text"))
}

func TestParseResponseDirectArray(t *testing.T) {
	raw := `[{"teamA": "Arsenal", "teamB": "Chelsea", "league": "Premier League"}]`

	matches, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Arsenal", matches[0].TeamA)
	assert.Equal(t, "Premier League", matches[0].League)
}

func TestParseResponseFencedArrayInProse(t *testing.T) {
	raw := "Here is the extracted data you asked for:\n\n" +
		"```json\n" +
		`[{"teamA": "Real Madrid", "teamB": "Barcelona", "odds": {"main1X2": {"home": "1.80", "draw": "3.50", "away": "4.20"}}}]` +
		"\n```\n\nLet me know if you need anything else!"

	matches, err := ParseResponse(raw)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Real Madrid", matches[0].TeamA)
	require.NotNil(t, matches[0].Odds)
	require.NotNil(t, matches[0].Odds.Main1X2)
	assert.Equal(t, "1.80", matches[0].Odds.Main1X2.Home)
}

func TestParseResponseRepairedJSON(t *testing.T) {
	t.Run("bare keys and trailing commas", func(t *testing.T) {
		raw := `The matches are: [{teamA: "Ajax", teamB: "PSV", league: "Eredivisie",}]`

		matches, err := ParseResponse(raw)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Ajax", matches[0].TeamA)
		assert.Equal(t, "PSV", matches[0].TeamB)
	})

	t.Run("smart quotes", func(t *testing.T) {
		raw := `[{“teamA”: “Bayern”, “teamB”: “Dortmund”}]`

		matches, err := ParseResponse(raw)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "Bayern", matches[0].TeamA)
	})
}

func TestParseObjectFragments(t *testing.T) {
	raw := `I found two fixtures.
First: {"teamA": "Liverpool", "teamB": "Everton", "matchTime": "20:00"}
Second: {"teamA": "Inter", "teamB": "Milan"}
And this one is incomplete: {"teamA": "Lyon"}`

	matches := ParseObjectFragments(raw)
	require.Len(t, matches, 2)
	assert.Equal(t, "Liverpool", matches[0].TeamA)
	assert.Equal(t, "20:00", matches[0].MatchTime)
	assert.Equal(t, "Milan", matches[1].TeamB)
}

func TestParseVersusText(t *testing.T) {
	t.Run("plain vs line", func(t *testing.T) {
		matches := ParseVersusText("TeamX vs TeamY")
		require.Len(t, matches, 1)
		assert.Equal(t, "TeamX", matches[0].TeamA)
		assert.Equal(t, "TeamY", matches[0].TeamB)
		assert.Nil(t, matches[0].Odds)
	})

	t.Run("separator variants", func(t *testing.T) {
		for _, line := range []string{
			"Arsenal vs Chelsea",
			"Arsenal vs. Chelsea",
			"Arsenal versus Chelsea",
			"Arsenal - Chelsea",
			"Arsenal @ Chelsea",
		} {
			matches := ParseVersusText(line)
			require.Len(t, matches, 1, "line %q", line)
			assert.Equal(t, "Arsenal", matches[0].TeamA, "line %q", line)
			assert.Equal(t, "Chelsea", matches[0].TeamB, "line %q", line)
		}
	})

	t.Run("multi-word names and list bullets", func(t *testing.T) {
		raw := "The visible matches are:\n- Real Madrid vs Atletico Madrid\n2. Manchester United vs Manchester City"
		matches := ParseVersusText(raw)
		require.Len(t, matches, 2)
		assert.Equal(t, "Real Madrid", matches[0].TeamA)
		assert.Equal(t, "Atletico Madrid", matches[0].TeamB)
		assert.Equal(t, "Manchester City", matches[1].TeamB)
	})

	t.Run("no match in plain prose", func(t *testing.T) {
		assert.Empty(t, ParseVersusText("The image contains no betting data."))
	})
}

func TestParseCapitalizedPairs(t *testing.T) {
	matches := ParseCapitalizedPairs("Upcoming fixtures feature Borussia Dortmund and then Bayern Munich playing this weekend")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Upcoming", matches[0].TeamA)
}

func TestParseResponseExhausted(t *testing.T) {
	_, err := ParseResponse("?! ... 12 34 ...")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Excerpt, "?!")
}

func TestParseErrorExcerptTruncated(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "?????????? " // no recoverable content
	}

	_, err := ParseResponse(long)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.LessOrEqual(t, len(parseErr.Excerpt), excerptLimit+3)
}

func TestFirstArraySubstring(t *testing.T) {
	sub, ok := FirstArraySubstring(`prefix [1, [2, 3], 4] suffix`)
	require.True(t, ok)
	assert.Equal(t, "[1, [2, 3], 4]", sub)

	_, ok = FirstArraySubstring("no brackets here")
	assert.False(t, ok)

	_, ok = FirstArraySubstring("[unclosed")
	assert.False(t, ok)
}

func TestRepairJSON(t *testing.T) {
	assert.JSONEq(t, `[{"a": "1"}]`, RepairJSON(`[{a: "1",}]`))
	assert.JSONEq(t, `{"key": "value"}`, RepairJSON(`{“key”: “value”}`))
}
