package dashboard

// Summary is the dashboard headline view: active headcount plus
// today's attendance counts. Present includes late arrivals.
type Summary struct {
	Date            string `json:"date"`
	TotalEmployees  int    `json:"total_employees"`
	ActiveEmployees int    `json:"active_employees"`
	PresentToday    int    `json:"present_today"`
	LateToday       int    `json:"late_today"`
	HalfDayToday    int    `json:"half_day_today"`
	OnLeaveToday    int    `json:"on_leave_today"`
	CheckedOutToday int    `json:"checked_out_today"`
	NotCheckedIn    int    `json:"not_checked_in"`
}
