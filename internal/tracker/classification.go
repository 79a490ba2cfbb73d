package tracker

// CategoryStatus is the per-category classification.
type CategoryStatus string

const (
	CategoryOverspent  CategoryStatus = "overspent"
	CategoryOnTrack    CategoryStatus = "on-track"
	CategoryUnderspent CategoryStatus = "underspent"
)

// GlobalStatus is the aggregate classification over all categories.
type GlobalStatus string

const (
	StatusOverspent  GlobalStatus = "overspent"
	StatusUnderspent GlobalStatus = "underspent"
	StatusNeutral    GlobalStatus = "neutral"
)

// Severity bands an alert for display purposes only.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityCritical Severity = "critical"
)

// Overage below 110% of the limit is deliberately not flagged, and a reward
// needs more than 30% of the limit left unspent. Tuned values; boundary
// behavior is part of the contract.
const (
	overspendRatio     = 1.10
	underspendFraction = 0.3
)

// Classify derives a category's status from its limit and spent total.
//
// Overspent needs the limit exceeded by at least 10%: spending 109.9% of the
// limit is still on-track. Underspent needs positive spending with more than
// 30% of the limit remaining. A zero limit with positive spending counts as
// overspent. Everything else, including untouched categories, is on-track.
func Classify(limit, spent float64) CategoryStatus {
	if limit <= 0 {
		if spent > 0 {
			return CategoryOverspent
		}
		return CategoryOnTrack
	}
	if spent > limit && spent/limit >= overspendRatio {
		return CategoryOverspent
	}
	if limit-spent > limit*underspendFraction && spent > 0 {
		return CategoryUnderspent
	}
	return CategoryOnTrack
}

// SeverityFor bands an overspend percentage: up to 10% minor, up to 25%
// moderate, critical beyond that.
func SeverityFor(percentage int) Severity {
	switch {
	case percentage <= 10:
		return SeverityMinor
	case percentage <= 25:
		return SeverityModerate
	default:
		return SeverityCritical
	}
}
