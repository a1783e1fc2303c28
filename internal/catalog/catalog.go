// Package catalog holds the static sport reference data: every sport the
// library knows about, its display name, icon and category.
package catalog

// Category groups sports for filtering.
type Category string

const (
	CategoryTraditional Category = "traditional"
	CategoryRacing      Category = "racing"
	CategoryEsports     Category = "esports"
)

// Sport is one entry of the closed sport enumeration.
type Sport struct {
	ID       string
	Name     string
	Category Category
	Icon     string
}

// Sports is the full catalog in display order.
var Sports = []Sport{
	// Traditional
	{ID: "football", Name: "Football (Soccer)", Category: CategoryTraditional, Icon: "⚽"},
	{ID: "tennis", Name: "Tennis", Category: CategoryTraditional, Icon: "🎾"},
	{ID: "basketball", Name: "Basketball", Category: CategoryTraditional, Icon: "🏀"},
	{ID: "hockey", Name: "Ice Hockey", Category: CategoryTraditional, Icon: "🏒"},
	{ID: "baseball", Name: "Baseball", Category: CategoryTraditional, Icon: "⚾"},
	{ID: "american-football", Name: "American Football", Category: CategoryTraditional, Icon: "🏈"},
	{ID: "cricket", Name: "Cricket", Category: CategoryTraditional, Icon: "🏏"},
	{ID: "table-tennis", Name: "Table Tennis", Category: CategoryTraditional, Icon: "🏓"},
	{ID: "volleyball", Name: "Volleyball", Category: CategoryTraditional, Icon: "🏐"},
	{ID: "handball", Name: "Handball", Category: CategoryTraditional, Icon: "🤾"},
	{ID: "snooker", Name: "Snooker", Category: CategoryTraditional, Icon: "🎱"},
	{ID: "boxing", Name: "Boxing", Category: CategoryTraditional, Icon: "🥊"},
	{ID: "mma", Name: "MMA", Category: CategoryTraditional, Icon: "🥋"},
	{ID: "golf", Name: "Golf", Category: CategoryTraditional, Icon: "⛳"},
	{ID: "rugby", Name: "Rugby", Category: CategoryTraditional, Icon: "🏉"},
	{ID: "darts", Name: "Darts", Category: CategoryTraditional, Icon: "🎯"},

	// Racing
	{ID: "horse-racing", Name: "Horse Racing", Category: CategoryRacing, Icon: "🏇"},
	{ID: "formula1", Name: "Formula 1", Category: CategoryRacing, Icon: "🏎️"},
	{ID: "nascar", Name: "NASCAR", Category: CategoryRacing, Icon: "🏁"},
	{ID: "greyhound-racing", Name: "Greyhound Racing", Category: CategoryRacing, Icon: "🐕"},
	{ID: "motogp", Name: "MotoGP", Category: CategoryRacing, Icon: "🏍️"},

	// Esports
	{ID: "fifa", Name: "FIFA", Category: CategoryEsports, Icon: "🎮"},
	{ID: "lol", Name: "League of Legends", Category: CategoryEsports, Icon: "🎮"},
	{ID: "cs2", Name: "Counter-Strike 2", Category: CategoryEsports, Icon: "🎮"},
	{ID: "valorant", Name: "Valorant", Category: CategoryEsports, Icon: "🎮"},
	{ID: "dota2", Name: "Dota 2", Category: CategoryEsports, Icon: "🎮"},
}

var byID = func() map[string]Sport {
	m := make(map[string]Sport, len(Sports))
	for _, s := range Sports {
		m[s.ID] = s
	}
	return m
}()

// Lookup returns the sport for an identifier.
func Lookup(id string) (Sport, bool) {
	s, ok := byID[id]
	return s, ok
}

// CategoryFor maps a sport identifier to its category. Unknown or empty
// sports default to traditional.
func CategoryFor(sportID string) Category {
	if s, ok := byID[sportID]; ok {
		return s.Category
	}
	return CategoryTraditional
}
