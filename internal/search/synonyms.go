package search

// synonyms maps a canonical query token to the alternate terms treated as
// equivalent for matching. Expansion always keeps the original token, and
// no alternate appears as a key, so expanding an already-expanded set is a
// no-op (the closure property the engine relies on).
var synonyms = map[string][]string{
	"shampoo":     {"cleanser", "clarifying", "wash"},
	"conditioner": {"conditioning", "detangler", "softening"},
	"serum":       {"treatment", "concentrate", "elixir"},
	"mask":        {"masque", "repair"},
	"spray":       {"mist", "spritz"},
	"oil":         {"oils", "nourishing"},
	"purple":      {"violet", "toning", "brass"},
	"red":         {"copper", "auburn"},
	"blonde":      {"blond", "lightened", "bleached"},
	"curly":       {"curl", "curls", "coily"},
	"dry":         {"hydrating", "moisture", "moisturizing"},
	"damaged":     {"repair", "bond", "strengthening"},
	"sensitive":   {"gentle", "soothing", "fragrance-free"},
	"dandruff":    {"flaky", "scalp"},
	"accessories": {"accessory", "tools", "brush", "comb"},
	"aging":       {"anti-aging", "wrinkle", "firming"},
	"spf":         {"sunscreen", "sun"},
	"gift":        {"set", "bundle", "kit"},
}

// Expand widens a token list into the full match set: every original token
// plus its configured alternates. Unrecognized tokens expand to themselves.
// The function is pure and never consults the catalog.
func Expand(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens)*2)
	for _, t := range tokens {
		set[t] = struct{}{}
		for _, alt := range synonyms[t] {
			set[alt] = struct{}{}
		}
	}
	return set
}
