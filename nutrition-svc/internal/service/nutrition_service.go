package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"carehome/consumption"
	"carehome/nutrition-svc/internal/domain"
	"carehome/nutrition-svc/internal/storage"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidResident  = errors.New("resident id must be a positive integer")
	ErrInvalidWeekStart = errors.New("week_start must be a YYYY-MM-DD date")
	ErrInvalidDate      = errors.New("date must be a YYYY-MM-DD date")
	ErrInvalidStatus    = errors.New("status must be pending, in_progress or completed")
)

const (
	activityLimit = 50

	DefaultComputeTimeout = 30 * time.Second
)

type NutritionService struct {
	menus    MenuSource
	careLogs CareLogSource
	cache    SummaryCache
	matcher  *consumption.Matcher
	logger   *zap.Logger
	inflight singleflight.Group
	now      func() time.Time

	computeTimeout time.Duration
}

func NewNutritionService(menus MenuSource, careLogs CareLogSource, cache SummaryCache, matcher *consumption.Matcher, logger *zap.Logger) *NutritionService {
	if matcher == nil {
		matcher = consumption.NewMatcher(time.UTC, nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NutritionService{
		menus:    menus,
		careLogs: careLogs,
		cache:    cache,
		matcher:  matcher,
		logger:   logger,
		now:      time.Now,

		computeTimeout: DefaultComputeTimeout,
	}
}

// SetComputeTimeout bounds a shared summary computation. It runs detached
// from the requests waiting on it, so this is its only deadline.
func (s *NutritionService) SetComputeTimeout(d time.Duration) {
	if d > 0 {
		s.computeTimeout = d
	}
}

// SetClock replaces the clock used to pick the current week.
func (s *NutritionService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *NutritionService) weekStart(raw string) (time.Time, error) {
	loc := s.matcher.Location()
	if raw == "" {
		return consumption.WeekStartOf(s.now(), loc), nil
	}
	ws, err := consumption.ParseWeekStart(raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidWeekStart, err)
	}
	return ws, nil
}

// WeeklySummary returns how much of the week's menu residentID ate. An empty
// weekStart means the current week; any other date is snapped to its Monday.
// Concurrent requests for the same resident and week share one computation;
// a caller that gives up does not cancel it for the others.
func (s *NutritionService) WeeklySummary(ctx context.Context, residentID int, weekStart string) (*domain.WeeklySummary, error) {
	if residentID <= 0 {
		return nil, ErrInvalidResident
	}
	ws, err := s.weekStart(weekStart)
	if err != nil {
		return nil, err
	}
	week := ws.Format(consumption.DateLayout)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, residentID, week)
		if err != nil {
			s.logger.Warn("Summary cache read failed", zap.Int("resident_id", residentID), zap.Error(err))
		}
		if cached != nil {
			return cached, nil
		}
	}

	key := strconv.Itoa(residentID) + ":" + week
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.computeTimeout)
		defer cancel()
		return s.compute(cctx, residentID, ws)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			s.logger.Debug("Shared in-flight summary", zap.String("key", key))
		}
		return res.Val.(*domain.WeeklySummary), nil
	}
}

func (s *NutritionService) compute(ctx context.Context, residentID int, ws time.Time) (*domain.WeeklySummary, error) {
	week := ws.Format(consumption.DateLayout)

	var (
		items     []consumption.WeeklyMenuItem
		logs      []consumption.CareLog
		report    *domain.NutritionReport
		menuErr   error
		logErr    error
		reportErr error
	)

	// Read before fetching so an invalidation that lands mid-compute keeps
	// this result out of the cache.
	var (
		gen    int64
		genErr error
	)
	if s.cache != nil {
		gen, genErr = s.cache.Generation(ctx, residentID, week)
		if genErr != nil {
			s.logger.Warn("Summary generation read failed", zap.Int("resident_id", residentID), zap.Error(genErr))
		}
	}

	// A failed fetch degrades the summary to a partial one instead of
	// failing it, so the goroutines keep their errors and never cancel
	// their siblings.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, menuErr = s.menus.WeeklyMenu(gctx, week)
		return nil
	})
	g.Go(func() error {
		logs, logErr = s.careLogs.ListCareLogs(gctx, residentID, ws, ws.AddDate(0, 0, 7))
		return nil
	})
	g.Go(func() error {
		report, reportErr = s.menus.NutritionReport(gctx, week)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var warnings []string
	if menuErr != nil {
		s.logger.Warn("Menu fetch failed", zap.String("week_start", week), zap.Error(menuErr))
		warnings = append(warnings, "menu unavailable: "+menuErr.Error())
		items = nil
	}
	if logErr != nil {
		s.logger.Warn("Care log fetch failed", zap.Int("resident_id", residentID), zap.Error(logErr))
		warnings = append(warnings, "care logs unavailable: "+logErr.Error())
		logs = nil
	}
	if reportErr != nil {
		s.logger.Warn("Nutrition report fetch failed", zap.String("week_start", week), zap.Error(reportErr))
		warnings = append(warnings, "nutrition report unavailable: "+reportErr.Error())
		report = nil
	}

	rows := s.matcher.Evaluate(items, logs, ws)
	if rows == nil {
		rows = []consumption.MenuConsumption{}
	}

	summary := &domain.WeeklySummary{
		ResidentID:  residentID,
		WeekStart:   week,
		Timezone:    s.matcher.Location().String(),
		Progress:    consumption.Aggregate(rows),
		Meals:       rows,
		Days:        buildDays(rows, ws, report),
		Nutrition:   report,
		Warnings:    warnings,
		GeneratedAt: s.now().UTC(),
	}

	if s.cache != nil && genErr == nil && !summary.Partial() {
		err := s.cache.SetSummary(ctx, summary, gen)
		switch {
		case errors.Is(err, storage.ErrSummaryChanged):
			s.logger.Debug("Summary changed while computing, not cached", zap.Int("resident_id", residentID))
		case err != nil:
			s.logger.Warn("Summary cache write failed", zap.Int("resident_id", residentID), zap.Error(err))
		}
	}
	return summary, nil
}

func buildDays(rows []consumption.MenuConsumption, ws time.Time, report *domain.NutritionReport) []domain.DaySummary {
	planned := map[int]domain.NutritionTotals{}
	if report != nil {
		for _, day := range report.Days {
			planned[day.DayOfWeek] = day.Totals
		}
	}

	byDay := consumption.ByDay(rows)
	days := make([]domain.DaySummary, 0, len(byDay))
	for offset, meals := range byDay {
		if meals == nil {
			meals = []consumption.MenuConsumption{}
		}
		day := domain.DaySummary{
			DayOfWeek: offset,
			Date:      ws.AddDate(0, 0, offset).Format(consumption.DateLayout),
			Meals:     meals,
			Progress:  consumption.Aggregate(meals),
		}
		if totals, ok := planned[offset]; ok {
			totals := totals
			day.Planned = &totals
		}
		days = append(days, day)
	}
	return days
}

// Activity ranks residents by care logs recorded on date, today when empty.
func (s *NutritionService) Activity(ctx context.Context, date string) (*domain.ActivityReport, error) {
	loc := s.matcher.Location()
	if date == "" {
		date = s.now().In(loc).Format(consumption.DateLayout)
	} else if _, err := time.ParseInLocation(consumption.DateLayout, date, loc); err != nil {
		return nil, ErrInvalidDate
	}

	report := &domain.ActivityReport{Date: date, Residents: []domain.ResidentActivity{}}
	if s.cache == nil {
		return report, nil
	}
	residents, err := s.cache.TopActivity(ctx, date, activityLimit)
	if err != nil {
		return nil, fmt.Errorf("read activity: %w", err)
	}
	if residents != nil {
		report.Residents = residents
	}
	return report, nil
}

// Classify runs the consumption classifier on ad-hoc text.
func (s *NutritionService) Classify(text, status string) (consumption.ConsumptionInfo, error) {
	if status != "" && !consumption.LogStatus(status).Valid() {
		return consumption.ConsumptionInfo{}, ErrInvalidStatus
	}
	return consumption.ClassifyText(text, consumption.LogStatus(status)), nil
}
