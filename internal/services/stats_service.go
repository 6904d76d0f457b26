package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/hero-task-tracker/internal/constants"
	"github.com/yukikurage/hero-task-tracker/internal/repository"
	"golang.org/x/sync/errgroup"
)

// StatsService produces the admin completion statistics. Results are always
// computed from the current store contents.
type StatsService struct {
	statsRepo repository.StatsRepository
	location  *time.Location
	now       func() time.Time
}

// NewStatsService creates a new StatsService. Completion days are calendar
// days in loc.
func NewStatsService(statsRepo repository.StatsRepository, loc *time.Location) *StatsService {
	if loc == nil {
		loc = time.Local
	}
	return &StatsService{
		statsRepo: statsRepo,
		location:  loc,
		now:       time.Now,
	}
}

// DailyCompletion groups the tasks completed on one calendar day.
type DailyCompletion struct {
	Date   string
	Count  int
	Titles []string
}

// JoinedTitles returns the titles joined with the stats separator.
func (d DailyCompletion) JoinedTitles() string {
	return strings.Join(d.Titles, constants.StatsTitleSeparator)
}

// UserCounts is the per-user task tally.
type UserCounts = repository.UserTaskCounts

// Overview bundles both views for the admin dashboard.
type Overview struct {
	Daily []DailyCompletion
	Users []UserCounts
}

// DailyCompletions returns completions within the trailing windowDays days,
// one group per calendar day, newest day first.
func (s *StatsService) DailyCompletions(ctx context.Context, windowDays int) ([]DailyCompletion, error) {
	if windowDays < 1 || windowDays > constants.MaxStatsWindowDays {
		return nil, ErrInvalidStatsRange
	}

	since := s.now().Add(-time.Duration(windowDays) * 24 * time.Hour)
	rows, err := s.statsRepo.CompletedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load completed tasks: %w", err)
	}

	// rows arrive newest first, so days are appended in descending order
	days := []DailyCompletion{}
	for _, row := range rows {
		date := row.CompletedAt.In(s.location).Format(time.DateOnly)
		last := len(days) - 1
		if last < 0 || days[last].Date != date {
			days = append(days, DailyCompletion{Date: date})
			last++
		}
		days[last].Count++
		days[last].Titles = append(days[last].Titles, row.Title)
	}

	return days, nil
}

// PerUserCounts returns pending/completed/total counts for every regular
// user, busiest first.
func (s *StatsService) PerUserCounts(ctx context.Context) ([]UserCounts, error) {
	rows, err := s.statsRepo.CountsByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks per user: %w", err)
	}
	return rows, nil
}

// Overview computes both views concurrently.
func (s *StatsService) Overview(ctx context.Context, windowDays int) (*Overview, error) {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		daily, err := s.DailyCompletions(gctx, windowDays)
		overview.Daily = daily
		return err
	})
	g.Go(func() error {
		users, err := s.PerUserCounts(gctx)
		overview.Users = users
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}
