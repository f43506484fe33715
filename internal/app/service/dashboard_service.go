package service

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
)

// TrendPoint is one day of the trailing sales series.
type TrendPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Total float64 `json:"total"`
}

// Snapshot is the dashboard summary. Recomputed from the database on
// every view; never cached.
type Snapshot struct {
	TotalUsers     int64        `json:"total_users"`
	ActiveUsers    int64        `json:"active_users"`
	ActiveProducts int64        `json:"active_products"`
	TodaySales     float64      `json:"today_sales"`
	WeeklySales    float64      `json:"weekly_sales"`
	Trend          []TrendPoint `json:"trend"`
}

type DashboardService interface {
	GetSnapshot() (*Snapshot, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo, now: time.Now}
}

// GetSnapshot assembles the summary from two aggregate queries. The
// trend is zero-filled into a dense 7-point series, chronologically
// ascending and ending on today, so sparse sales data never shortens
// it.
func (s *dashboardService) GetSnapshot() (*Snapshot, error) {
	counts, err := s.repo.Counts()
	if err != nil {
		return nil, err
	}

	now := s.now()
	// Midnight in the server's zone, not UTC. The grouped query labels
	// rows with local calendar dates, so the window keys must match.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -6)

	rows, err := s.repo.SalesSince(from)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64, len(rows))
	for _, row := range rows {
		byDay[row.Day] = row.Total
	}

	snapshot := &Snapshot{
		TotalUsers:     counts.TotalUsers,
		ActiveUsers:    counts.ActiveUsers,
		ActiveProducts: counts.ActiveProducts,
		Trend:          make([]TrendPoint, 0, 7),
	}

	for i := 0; i < 7; i++ {
		day := from.AddDate(0, 0, i).Format("2006-01-02")
		total := byDay[day]
		snapshot.Trend = append(snapshot.Trend, TrendPoint{Date: day, Total: total})
		snapshot.WeeklySales += total
	}
	snapshot.TodaySales = snapshot.Trend[6].Total

	logger.Debug("Dashboard snapshot computed", map[string]interface{}{
		"today_sales":  snapshot.TodaySales,
		"weekly_sales": snapshot.WeeklySales,
	})
	return snapshot, nil
}
