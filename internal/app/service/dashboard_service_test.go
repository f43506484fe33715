package service

import (
	"testing"
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	counts *repository.DashboardCounts
	sales  []repository.DailySales
	err    error

	gotFrom time.Time
}

func (s *stubDashboardRepo) Counts() (*repository.DashboardCounts, error) {
	return s.counts, s.err
}

func (s *stubDashboardRepo) SalesSince(from time.Time) ([]repository.DailySales, error) {
	s.gotFrom = from
	return s.sales, s.err
}

func fixedDashboardService(repo repository.DashboardRepository, now time.Time) DashboardService {
	svc := NewDashboardService(repo).(*dashboardService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestDashboardService_GetSnapshot(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)

	t.Run("Sparse sales are zero-filled into seven points", func(t *testing.T) {
		repo := &stubDashboardRepo{
			counts: &repository.DashboardCounts{TotalUsers: 5, ActiveUsers: 4, ActiveProducts: 12},
			sales: []repository.DailySales{
				{Day: "2026-08-24", Total: 150},
				{Day: "2026-08-28", Total: 99.5},
			},
		}
		svc := fixedDashboardService(repo, now)

		snapshot, err := svc.GetSnapshot()
		require.NoError(t, err)

		require.Len(t, snapshot.Trend, 7)
		assert.Equal(t, "2026-08-22", snapshot.Trend[0].Date)
		assert.Equal(t, "2026-08-28", snapshot.Trend[6].Date)

		// Chronologically ascending, zero on empty days.
		assert.Zero(t, snapshot.Trend[0].Total)
		assert.Equal(t, 150.0, snapshot.Trend[2].Total)
		assert.Zero(t, snapshot.Trend[5].Total)
		assert.Equal(t, 99.5, snapshot.Trend[6].Total)

		assert.Equal(t, 99.5, snapshot.TodaySales)
		assert.Equal(t, 249.5, snapshot.WeeklySales)
		assert.Equal(t, int64(5), snapshot.TotalUsers)
		assert.Equal(t, int64(4), snapshot.ActiveUsers)
		assert.Equal(t, int64(12), snapshot.ActiveProducts)
	})

	t.Run("Query window starts six days before today", func(t *testing.T) {
		repo := &stubDashboardRepo{counts: &repository.DashboardCounts{}}
		svc := fixedDashboardService(repo, now)

		_, err := svc.GetSnapshot()
		require.NoError(t, err)
		assert.Equal(t, "2026-08-22", repo.gotFrom.Format("2006-01-02"))
	})

	t.Run("No sales at all still yields a full trend", func(t *testing.T) {
		repo := &stubDashboardRepo{counts: &repository.DashboardCounts{TotalUsers: 1}}
		svc := fixedDashboardService(repo, now)

		snapshot, err := svc.GetSnapshot()
		require.NoError(t, err)
		require.Len(t, snapshot.Trend, 7)
		assert.Zero(t, snapshot.TodaySales)
		assert.Zero(t, snapshot.WeeklySales)
	})

	t.Run("Today follows the server's calendar, not UTC", func(t *testing.T) {
		// 02:00 IST is still the previous day in UTC. The window must
		// end on the local date or TodaySales reads yesterday's bucket.
		ist := time.FixedZone("IST", 5*3600+1800)
		early := time.Date(2026, 8, 28, 2, 0, 0, 0, ist)
		repo := &stubDashboardRepo{
			counts: &repository.DashboardCounts{},
			sales:  []repository.DailySales{{Day: "2026-08-28", Total: 75}},
		}
		svc := fixedDashboardService(repo, early)

		snapshot, err := svc.GetSnapshot()
		require.NoError(t, err)
		assert.Equal(t, "2026-08-28", snapshot.Trend[6].Date)
		assert.Equal(t, "2026-08-22", snapshot.Trend[0].Date)
		assert.Equal(t, 75.0, snapshot.TodaySales)
		assert.Equal(t, "2026-08-22", repo.gotFrom.Format("2006-01-02"))
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		repo := &stubDashboardRepo{err: assert.AnError}
		svc := fixedDashboardService(repo, now)

		_, err := svc.GetSnapshot()
		assert.Error(t, err)
	})
}
