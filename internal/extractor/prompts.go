package extractor

import "fmt"

// extractionInstruction demands exhaustive enumeration of every visible match
// and every visible odds market, and pins down the exact JSON array shape
// expected back. The model routinely stops at the first match without the
// explicit warnings.
const extractionInstruction = `🔍 **PRECISE MATCH AND ODDS DATA EXTRACTION**

Scan this betting screenshot and extract EVERY visible match. Do NOT stop at
the first match found - enumerate all of them, top to bottom.

**CRITICAL: ALL VISIBLE ODDS ACCURATELY!**
📅 **DATE & TIME:** Read the match date and time precisely
🏆 **LEAGUE/COMPETITION:** What competition they're playing in
📍 **VENUE:** Home/Away, stadium name if visible

🎯 **1X2 MARKET (MANDATORY):**
- Home Win odds (e.g: 1.64)
- Draw odds (e.g: 4.20)
- Away Win odds (e.g: 5.50)

⚽ **GOALS MARKETS (ALL VISIBLE):**
- Over/Under 0.5, 1.5, 2.0, 2.5 (exact odds: 1.25, 3.90)
- Specific team goal counts (e.g: England Over 1.5: 1.64)

🔥 **BTTS (BOTH TEAMS TO SCORE):**
- Yes odds (e.g: 1.82)
- No odds (e.g: 1.99)

🏆 **ADVANCEMENT MARKETS:**
- Who advances odds (e.g: England 1.30, Italy 3.50)

📐 **COMBINATIONS:**
- 1X2 + BTTS combinations (e.g: Home and Yes: 3.35)

📊 **Current Score:** If live match
⏱️ **Match Status:** Live, Upcoming, HT

**JSON FORMAT - ALL ODDS ACCURATELY:**

[
  {
    "teamA": "Team Name A",
    "teamB": "Team Name B",
    "matchDate": "2024-01-15",
    "matchTime": "20:00",
    "league": "Premier League",
    "venue": "Home/Away",
    "matchStatus": "Upcoming/Live/HT",
    "currentScore": "1-0",
    "sport": "%s",
    "odds": {
      "main1X2": {"home": "1.64", "draw": "4.20", "away": "5.50"},
      "btts": {"yes": "1.82", "no": "1.99"},
      "totalGoals": {
        "over05": "1.03", "under05": "12.00",
        "over15": "1.25", "under15": "3.90",
        "over20": "1.36", "under20": "3.10",
        "over25": null, "under25": null
      },
      "teamAGoals": {"over05": "1.09", "under05": "5.00", "over15": "1.64", "under15": "2.00"},
      "teamBGoals": {"over05": "1.20", "under05": "4.10", "over15": "2.10", "under15": "1.70"},
      "advancement": {"teamA": "1.30", "teamB": "3.50"},
      "combinations": {"homeAndBttsYes": "3.35", "drawAndBttsYes": "5.00", "awayAndBttsNo": "9.25"}
    }
  }
]

**🚨 IMPORTANT RULES:**
1. RETURN ONLY the JSON array, no other text!
2. ALL visible odds accurately, in decimal format (1.64, 4.20)
3. If a value is not visible, use null
4. Date in YYYY-MM-DD format
5. Team names exactly as they appear
6. One object per match - include EVERY match in the image`

// ExtractionInstruction returns the extraction prompt for a target sport.
func ExtractionInstruction(sport string) string {
	return fmt.Sprintf(extractionInstruction, sport)
}
