package dto

import "github.com/yukikurage/hero-task-tracker/internal/services"

// DailyStatDTO is one calendar day of completions. Titles are joined with
// the stats separator.
type DailyStatDTO struct {
	Date   string `json:"date"`
	Count  int    `json:"count"`
	Titles string `json:"titles"`
}

// UserStatDTO is one user's task tally
type UserStatDTO struct {
	UserID         uint64 `json:"user_id"`
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	PendingCount   int64  `json:"pending_count"`
	CompletedCount int64  `json:"completed_count"`
	TotalCount     int64  `json:"total_count"`
}

// StatsOverviewDTO bundles both views
type StatsOverviewDTO struct {
	Daily []DailyStatDTO `json:"daily"`
	Users []UserStatDTO  `json:"users"`
}

// ToDailyStatDTOs converts daily completion groups
func ToDailyStatDTOs(days []services.DailyCompletion) []DailyStatDTO {
	dtos := make([]DailyStatDTO, 0, len(days))
	for _, day := range days {
		dtos = append(dtos, DailyStatDTO{
			Date:   day.Date,
			Count:  day.Count,
			Titles: day.JoinedTitles(),
		})
	}
	return dtos
}

// ToUserStatDTOs converts per-user counts
func ToUserStatDTOs(rows []services.UserCounts) []UserStatDTO {
	dtos := make([]UserStatDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, UserStatDTO{
			UserID:         row.UserID,
			Username:       row.Username,
			DisplayName:    row.DisplayName,
			PendingCount:   row.PendingCount,
			CompletedCount: row.CompletedCount,
			TotalCount:     row.TotalCount,
		})
	}
	return dtos
}

// ToStatsOverviewDTO converts the combined overview
func ToStatsOverviewDTO(overview *services.Overview) StatsOverviewDTO {
	return StatsOverviewDTO{
		Daily: ToDailyStatDTOs(overview.Daily),
		Users: ToUserStatDTOs(overview.Users),
	}
}
