// Package seed holds the built-in prompt library the manual collection is
// initialized with, and restored to by reset.
package seed

import (
	"github.com/promptdeck/promptdeck/internal/catalog"
	"github.com/promptdeck/promptdeck/internal/prompt"
)

const seededAt = "2024-01-15T10:00:00Z"

// Prompts returns a fresh copy of the seed set. Callers may mutate the
// returned records freely.
func Prompts() []prompt.Prompt {
	out := make([]prompt.Prompt, len(seedSet))
	copy(out, seedSet)
	for i := range out {
		out[i].Tags = append([]string(nil), seedSet[i].Tags...)
	}
	return out
}

// Count is the number of built-in prompts.
func Count() int { return len(seedSet) }

var seedSet = []prompt.Prompt{
	{
		ID:       "football-ev-scanner",
		Title:    "Football Match Analysis - General EV Scanner",
		Sport:    "football",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeGeneral,
		Tags:     []string{"weather", "form", "statistics", "injuries", "motivation"},
		Content: `⚽ **FOOTBALL EV SCANNER - PhD Level Analysis**

⏰ **SEARCH FOR TODAY'S OR TOMORROW'S TIPS:**

📅 **TIME PRIORITY:**
1️⃣ **FIRST PRIORITY: TODAY'S matches**
2️⃣ **Second priority: Tomorrow's programs**
3️⃣ **Third priority: Next day (only if necessary)**

🏆 **TARGET LEAGUES:**
- Premier League, La Liga, Bundesliga, Serie A, Ligue 1
- Champions League, Europa League, National cups
- All major European and international competitions

📊 **COMPREHENSIVE ANALYSIS FRAMEWORK:**

**1. TEAM FORM & PERFORMANCE METRICS:**
- Last 10 matches: W-D-L record, goals scored/conceded
- Home/Away form split analysis
- Expected Goals (xG) vs Actual Goals differential
- Shot conversion rates and defensive efficiency
- Recent head-to-head record (last 5 meetings)

**2. STATISTICAL MODELING:**
- Poisson distribution for goal prediction
- Elo rating system calculations
- Team strength ratings (attack/defense)
- Market efficiency analysis vs true probabilities

**3. CONTEXTUAL FACTORS:**
- Weather conditions (temperature, wind, precipitation)
- Pitch conditions and stadium characteristics
- Team motivation (league position, European qualification, relegation battle)
- Fixture congestion and rotation policies

**4. INJURY & SUSPENSION ANALYSIS:**
- Key player availability (impact rating 1-10)
- Tactical system disruption assessment
- Replacement player quality differential

**5. BETTING MARKET ANALYSIS:**
For each available market, calculate:
- Implied probability from odds
- True probability using statistical models
- Expected Value (EV) = (True Probability × Odds) - 1
- Kelly Criterion optimal stake percentage

**REQUIRED OUTPUT FORMAT:**
- **Match prediction with confidence percentage**
- **Top 5 highest EV bets ranked by value**
- **Risk assessment for each recommendation**
- **Detailed mathematical reasoning for each selection**

**IMPORTANT:** Focus on TODAY'S and TOMORROW'S matches only!`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "football-specific-analysis",
		Title:    "Football Match Analysis: [Team A] vs [Team B]",
		Sport:    "football",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeSpecific,
		Tags:     []string{"head-to-head", "tactics", "value-bets"},
		Content: `Conduct a comprehensive PhD-level betting analysis for the football match between [TEAM A] and [TEAM B].

## 1. TEAM FORM ANALYSIS
- Last 10 matches for [Team A]: results, goals scored and conceded
- Last 10 matches for [Team B]: results, goals scored and conceded
- Home/away form split for both sides
- Injuries and suspensions with impact assessment

## 2. HEAD-TO-HEAD RECORD
- Last 5 meetings between [Team A] and [Team B]
- Goals pattern in this pairing
- Home advantage history

## 3. TACTICAL ANALYSIS
- Playing style comparison and likely formations
- Key individual matchups
- Set-piece threat on both sides

## 4. MARKET ANALYSIS
- Evaluate 1X2, BTTS, and total-goals markets
- Implied vs modelled probability for each outcome
- Identify the highest expected-value selections

## 5. RECOMMENDATIONS
- Best value bets with confidence levels
- Risk/reward assessment
- Suggested staking approach

Justify every recommendation with statistics and logical arguments.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "tennis-specific-analysis",
		Title:    "Tennis Match Analysis: [PLAYER A] vs [PLAYER B]",
		Sport:    "tennis",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeSpecific,
		Tags:     []string{"surface", "h2h", "form"},
		Content: `Conduct a comprehensive PhD-level analysis for the tennis match between [PLAYER A] and [PLAYER B].

## 1. PLAYER PERFORMANCE ANALYSIS
- Current ranking and 12-month trend for both players
- Last 10 matches: results, sets won/lost, opponents' quality
- Physical condition, recent retirements or injury concerns

## 2. SURFACE ANALYSIS
- Career and season record on this surface for [Player A] and [Player B]
- Serve and return statistics by surface
- Adaptation to conditions (altitude, indoor/outdoor, ball type)

## 3. HEAD-TO-HEAD
- Full H2H record with surface breakdown
- Pattern of recent meetings and margins

## 4. STYLE MATCHUP
- Serve dominance vs return quality
- Baseline consistency vs aggression
- Physical endurance in long matches

## 5. BETTING OPPORTUNITIES
- Match winner with confidence percentage
- Set betting and correct score value
- Games handicap and over/under total games

Justify every recommendation with ATP/WTA statistics.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "basketball-ev-scanner",
		Title:    "Basketball EV Scanner - NBA & EuroLeague",
		Sport:    "basketball",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeGeneral,
		Tags:     []string{"nba", "pace", "player-props"},
		Content: `🏀 **BASKETBALL EV SCANNER - PhD Level Analysis**

📅 **Schedule Priority:**
- Main focus: TODAY'S slate (NBA prime time, EuroLeague)
- If thin schedule: include TOMORROW'S games

🏆 **TARGET LEAGUES:** NBA, EuroLeague, ACB, BBL

📊 **ANALYSIS FRAMEWORK:**

**1. TEAM STATISTICS**
- Offensive/Defensive rating
- Pace of play and possessions per game
- Shooting percentages (FG%, 3P%, FT%)
- Rebounding differentials

**2. KEY PLAYERS**
- Injury report and questionable designations
- Usage rate and efficiency of primary options
- Matchup advantages by position

**3. SITUATIONAL FACTORS**
- Back-to-back games and rest differential
- Home court advantage
- Travel distance and schedule spots

**4. BETTING MARKETS**
- Point spread and total points value
- Player props with statistical edges
- Quarter/half derivative markets

**REQUIRED OUTPUT:** ranked list of highest-EV bets with reasoning,
confidence levels, and the key number analysis for each spread.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "basketball-specific-analysis",
		Title:    "Basketball Match Analysis: [TEAM A] vs [TEAM B]",
		Sport:    "basketball",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeSpecific,
		Tags:     []string{"spread", "totals", "matchups"},
		Content: `Produce a professional betting analysis for the basketball game [TEAM A] vs [TEAM B].

1. Compare offensive and defensive ratings, pace, and four-factor profiles.
2. Break down the key positional matchups and coaching tendencies.
3. Assess availability: injuries, rest days, back-to-back situations for [Team A] and [Team B].
4. Evaluate the spread, total, and moneyline for value against your model.
5. Recommend the best plays with confidence levels and brief reasoning.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "hockey-ev-scanner",
		Title:    "Ice Hockey EV Scanner - NHL Focus",
		Sport:    "hockey",
		Category: catalog.CategoryTraditional,
		Type:     prompt.TypeGeneral,
		Tags:     []string{"nhl", "goaltending", "special-teams"},
		Content: `🏒 **ICE HOCKEY EV SCANNER**

Scan TODAY'S NHL slate for value. For each game evaluate:

1. **Goaltending:** confirmed starters, save percentage trends, rest
2. **Special teams:** power-play and penalty-kill efficiency differentials
3. **Form:** last 10 games, goals for/against, shot share (Corsi/Fenwick)
4. **Situational:** back-to-backs, travel, divisional intensity
5. **Markets:** moneyline, puck line, total goals (5.5/6.5 lines)

Output the top 3 expected-value plays with implied vs modelled
probabilities and a short justification for each.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "esports-cs2-scanner",
		Title:    "Counter-Strike 2 Match Scanner",
		Sport:    "cs2",
		Category: catalog.CategoryEsports,
		Type:     prompt.TypeGeneral,
		Tags:     []string{"maps", "hltv", "form"},
		Content: `🎮 **CS2 BETTING SCANNER**

Analyze today's tier-1 and tier-2 CS2 matches:

1. **Map pool:** permaban patterns, pick priority, win rates per map
2. **Form:** HLTV rating trends over last 3 months, roster changes
3. **H2H:** recent meetings with map-level detail
4. **Context:** LAN vs online, event stakes, stand-ins
5. **Markets:** match winner, map handicap, total maps over/under

Recommend the highest-value selections with reasoning grounded in
map-level statistics, not just overall rankings.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
	{
		ID:       "horse-racing-scanner",
		Title:    "Horse Racing Value Scanner",
		Sport:    "horse-racing",
		Category: catalog.CategoryRacing,
		Type:     prompt.TypeGeneral,
		Tags:     []string{"going", "trainer-form", "each-way"},
		Content: `🏇 **HORSE RACING VALUE SCANNER**

For today's feature race cards, analyze each runner on:

1. **Recent form:** last 6 runs with class and distance context
2. **Going suitability:** record on today's ground
3. **Trainer/jockey:** current strike rates and course records
4. **Draw and pace:** likely race shape and positional bias
5. **Market:** compare early prices against your assessed probability

Highlight overpriced runners with each-way value and flag any short-priced
favourites whose odds are not justified by the data.`,
		CreatedAt: seededAt,
		UpdatedAt: seededAt,
	},
}
