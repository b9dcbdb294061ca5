package dto

type TimelineFilters struct {
	ShiftID string
	Action  string
	// Query matches description text.
	Query    string
	Page     int
	PageSize int
}
