package dto

// OverviewPoint — satu hari pada seri aktivitas dashboard.
// Perfect berarti semua habit aktif memenuhi target hari itu.
type OverviewPoint struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Done    int    `json:"done"`
	Total   int    `json:"total"`
	Perfect bool   `json:"perfect"`
}

// SummaryResponse — agregasi KPI lintas habit aktif milik user.
type SummaryResponse struct {
	TotalActive       int             `json:"total_active"`
	AvgCurrentStreak  int             `json:"avg_current_streak"`
	BestLongestStreak int             `json:"best_longest_streak"`
	AvgCompletionRate int             `json:"avg_completion_rate"`
	PerfectDays       int             `json:"perfect_days"`
	Range             int             `json:"range"`
	ChartDays         int             `json:"chart_days"`
	Series            []OverviewPoint `json:"series"`
}
