package models

// Option is a closed-vocabulary entry with a stable id and a display
// label.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var JobCategories = []Option{
	{ID: "cafe_restaurant", Label: "Café/Restaurant"},
	{ID: "retail", Label: "Retail"},
	{ID: "event_staffing", Label: "Event Staffing"},
	{ID: "delivery", Label: "Delivery"},
	{ID: "general_labor", Label: "General Labor"},
	{ID: "other", Label: "Other"},
}

var PayRateTypes = []Option{
	{ID: "per_hour", Label: "Per Hour"},
	{ID: "per_day", Label: "Per Day"},
	{ID: "per_month", Label: "Per Month"},
	{ID: "fixed", Label: "Fixed Rate"},
}

func ValidCategory(id string) bool {
	for _, c := range JobCategories {
		if c.ID == id {
			return true
		}
	}
	return false
}

func ValidPayRateType(id string) bool {
	for _, p := range PayRateTypes {
		if p.ID == id {
			return true
		}
	}
	return false
}
