package tracker

// defaultSuggestions is the canned suggestion catalog keyed by category name.
var defaultSuggestions = map[string][]string{
	"Food & Dining": {
		"Cook at home 2 more times this week",
		"Use grocery coupons and discounts",
		"Plan meals to avoid food waste",
		"Try cheaper restaurants or street food",
	},
	"Transportation": {
		"Use public transport instead of cabs",
		"Carpool with colleagues",
		"Walk or cycle for short distances",
		"Use bike-sharing services",
	},
	"Entertainment": {
		"Look for free events and activities",
		"Use streaming service family plans",
		"Find local community events",
		"Host game nights at home",
	},
	"Shopping": {
		"Wait 24 hours before buying non-essentials",
		"Use price comparison apps",
		"Look for sales and clearance items",
		"Consider buying second-hand",
	},
	"Utilities": {
		"Switch to energy-efficient appliances",
		"Use LED bulbs and smart power strips",
		"Negotiate better rates with providers",
		"Reduce water and electricity usage",
	},
	"Healthcare": {
		"Use generic medicines when possible",
		"Preventive care to avoid major expenses",
		"Compare pharmacy prices",
		"Use health insurance benefits",
	},
}

var genericSuggestions = []string{
	"Review your spending habits",
	"Look for ways to reduce costs",
	"Consider if this expense is necessary",
	"Find alternative cheaper options",
}

// suggestionsFor returns the canned list for a category name, falling back
// to the generic list for unknown categories rather than failing.
func (t *Tracker) suggestionsFor(category string) []string {
	if s, ok := t.suggestions[category]; ok {
		return s
	}
	return genericSuggestions
}
