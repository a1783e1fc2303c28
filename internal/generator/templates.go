package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/promptdeck/promptdeck/internal/matchdata"
)

// promptRequest is the escalation message sent to the model: it does not ask
// for an analysis, it asks for an analysis PROMPT the user can carry into
// another session.
func promptRequest(m matchdata.Match, sport string) string {
	return fmt.Sprintf(`**PHD-LEVEL SPORTS BETTING ANALYSIS PROMPT REQUEST**

**MATCH INFORMATION:**
- Teams: %s
- League: %s
- Date/Time: %s %s
- Venue: %s
- Current Status: %s
- Sport: %s

**REQUEST:**
Create a comprehensive, PhD-level sports betting analysis prompt for the above match. This prompt should be designed to be used with ChatGPT or similar AI models to generate professional betting analysis.

**PROMPT REQUIREMENTS:**

1. **COMPREHENSIVE DATA COLLECTION FRAMEWORK**
   - Request the most recent team statistics (last 10-15 matches)
   - Head-to-head historical data analysis
   - Current form indicators and trends
   - Player availability and injury reports
   - Tactical analysis requirements

2. **ADVANCED STATISTICAL ANALYSIS**
   - Performance metrics and advanced statistics
   - Home/away performance differentials
   - Goal-scoring patterns and defensive records
   - Set-piece effectiveness
   - Possession and control statistics

3. **MARKET ANALYSIS AND VALUE IDENTIFICATION**
   - Odds comparison across multiple bookmakers
   - Implied probability calculations
   - Value betting opportunities identification
   - Market movement analysis
   - Risk assessment and bankroll management

4. **PROFESSIONAL RECOMMENDATION STRUCTURE**
   - Clear betting recommendations with rationale
   - Confidence levels for each recommendation
   - Alternative betting options
   - Risk-reward analysis
   - Portfolio approach to betting

5. **ACADEMIC-LEVEL METHODOLOGY**
   - Statistical significance testing
   - Confidence intervals
   - Regression analysis considerations
   - Machine learning model validation approaches
   - Peer-reviewed methodology references

**OUTPUT FORMAT:**
The prompt should request a structured analysis with:
- Executive summary
- Detailed statistical breakdown
- Market analysis with specific odds evaluation
- Risk assessment matrix
- Specific betting recommendations with confidence levels
- Alternative scenarios and contingency plans

**LANGUAGE:** Write the entire prompt in English, regardless of the original language of the match data.

**ACADEMIC STANDARD:** This should be at PhD dissertation level, suitable for professional sports analysts and academic research.`,
		m.Label(), m.League, m.MatchDate, m.MatchTime, m.Venue, m.MatchStatus, sport)
}

// FallbackBody renders the local, sport-switched prompt body used whenever
// the remote escalation is unavailable or fails. Pure string formatting: it
// cannot fail, so every validated match always yields a prompt.
func FallbackBody(m matchdata.Match, sport string) string {
	today := time.Now().Format("1/2/2006")

	switch sport {
	case "football", "american-football":
		return fmt.Sprintf(`🏈 **PHD-LEVEL FOOTBALL ANALYSIS PROMPT REQUEST:**

⏰ **TIME PRIORITY:**
1️⃣ **FIRST PRIORITY: TODAY'S matches** - %s
2️⃣ **Second priority: Tomorrow's programs**
3️⃣ **Third priority: Next day (only if necessary)**

🎯 **REQUEST:**
Create a PhD-level, professional betting analysis prompt for this match. Use the latest data and statistics.

**📊 ANALYSIS FRAMEWORK:**

**1. TEAM FORM ANALYSIS**
- Last 10 match results (W-D-L)
- Home/away performance separately
- Goal statistics (scored/conceded average)
- Injuries, suspensions list

**2. HEAD-TO-HEAD RECORD**
- Last 5 meeting results
- Number of goals in these matches
- Home/away advantage in this pairing

**3. TACTICAL ANALYSIS**
- Playing style comparison
- Strengths and weaknesses
- Formation and key players

**4. MARKET ANALYSIS**
- Odds evaluation for all markets
- Value bet identification
- Implied probability vs real probability

**5. RECOMMENDATIONS**
- Best value bets
- Risk/reward ratio
- Bankroll management suggestions

**IMPORTANT:** Justify every recommendation with statistics and logical arguments!`, today)

	case "tennis":
		return fmt.Sprintf(`🎾 **PHD-LEVEL TENNIS ANALYSIS PROMPT REQUEST:**

⏰ **TIME PRIORITY:**
1️⃣ **FIRST PRIORITY: TODAY'S matches** - %s
2️⃣ **Second priority: Tomorrow's ATP/WTA**
3️⃣ **Third priority: Next day (only if necessary)**

🎯 **REQUEST:**
Create a PhD-level, professional tennis betting analysis prompt for this match.

**📊 ANALYSIS FRAMEWORK:**

**1. PLAYER FORM**
- Last 10 match results
- Current ranking and trend
- Injuries, physical condition

**2. SURFACE ANALYSIS**
- Performance on this surface
- Favorite/least favorite surface
- Weather factors impact

**3. HEAD-TO-HEAD RECORD**
- H2H record
- Last meeting results
- Surface breakdown

**4. PLAYING STYLE COMPARISON**
- Serve vs return
- Baseline vs net play
- Physical vs technical game

**5. BETTING OPPORTUNITIES**
- Match winner
- Set betting
- Game handicap
- Over/Under games

**IMPORTANT:** Justify every recommendation with ATP/WTA statistics!`, today)

	case "basketball":
		return fmt.Sprintf(`🏀 **PHD-LEVEL BASKETBALL ANALYSIS PROMPT REQUEST:**

⏰ **TIME PRIORITY:**
1️⃣ **FIRST PRIORITY: TODAY'S NBA matches** - %s
2️⃣ **Second priority: Tomorrow's programs**
3️⃣ **Third priority: Next day (only if necessary)**

🎯 **REQUEST:**
Create a PhD-level, professional NBA/basketball betting analysis prompt.

**📊 ANALYSIS FRAMEWORK:**

**1. TEAM STATISTICS**
- Offensive/Defensive rating
- Pace of play
- Shooting percentages
- Rebounding differentials

**2. KEY PLAYERS**
- Injuries, questionable status
- Usage rate, efficiency
- Matchup advantages

**3. SITUATIONAL FACTORS**
- Back-to-back games
- Home court advantage
- Rest days
- Travel distance

**4. BETTING MARKETS**
- Point spread
- Total points (Over/Under)
- Player props
- Quarter/Half bets

**5. ADVANCED METRICS**
- True shooting %%
- Effective field goal %%
- Turnover rate
- Free throw rate

**IMPORTANT:** Use NBA.com and Basketball Reference data!`, today)

	default:
		return fmt.Sprintf(`🎯 **PHD-LEVEL %s ANALYSIS PROMPT REQUEST:**

**🔍 BASIC RESEARCH - BEFORE ALL DATA:**
1️⃣ **Today's date:** %s
2️⃣ **Match to search:** %s
3️⃣ **Sport:** %s

**📊 COMPLETE ANALYSIS FRAMEWORK:**

**1. BASIC DATA COLLECTION**
- Exact match time
- League/competition information
- Venue and conditions

**2. TEAM/PLAYER ANALYSIS**
- Current form
- Statistical indicators
- Injuries, absences

**3. MARKET ANALYSIS**
- Odds comparison
- Value bet search
- Implied probability calculation

**4. RISK ANALYSIS**
- Bankroll management
- Kelly criterion application
- Expected value calculation

**5. FINAL RECOMMENDATIONS**
- Best value bets with rationale
- Confidence level per recommendation
- Staking suggestion

**IMPORTANT:** Justify every recommendation with verifiable statistics!`,
			strings.ToUpper(sport), today, m.Label(), sport)
	}
}
