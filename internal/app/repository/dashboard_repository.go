package repository

import (
	"time"

	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/app/model"
	"github.com/Rajeshpandey9807/radhira-pos-backend/internal/dialect"
	"github.com/Rajeshpandey9807/radhira-pos-backend/pkg/logger"
	"gorm.io/gorm"
)

// DashboardCounts is the entity-count half of the snapshot.
type DashboardCounts struct {
	TotalUsers     int64 `gorm:"column:total_users"`
	ActiveUsers    int64 `gorm:"column:active_users"`
	ActiveProducts int64 `gorm:"column:active_products"`
}

// DailySales is one grouped row of the trailing sales query. Days with
// no sales produce no row; the service zero-fills the series.
type DailySales struct {
	Day   string  `gorm:"column:day"` // calendar date, YYYY-MM-DD
	Total float64 `gorm:"column:total"`
}

type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
	SalesSince(from time.Time) ([]DailySales, error)
}

type dashboardRepository struct {
	db      *gorm.DB
	adapter dialect.Adapter
}

func NewDashboardRepository(db *gorm.DB, adapter dialect.Adapter) DashboardRepository {
	return &dashboardRepository{db: db, adapter: adapter}
}

func (r *dashboardRepository) Counts() (*DashboardCounts, error) {
	var counts DashboardCounts
	err := r.db.Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM users WHERE active = ?) AS active_users,
			(SELECT COUNT(*) FROM products WHERE active = ?) AS active_products
	`, true, true).Scan(&counts).Error
	if err != nil {
		logger.Error("Failed to read dashboard counts", err)
		return nil, err
	}
	return &counts, nil
}

func (r *dashboardRepository) SalesSince(from time.Time) ([]DailySales, error) {
	dateExpr := r.adapter.DateOnlyExpr("sale_date")

	var rows []DailySales
	err := r.db.Raw(
		"SELECT "+dateExpr+" AS day, SUM(total_amount) AS total"+
			" FROM sales WHERE sale_date >= ? AND status = ?"+
			" GROUP BY "+dateExpr+
			" ORDER BY day",
		from, model.SaleCompleted,
	).Scan(&rows).Error
	if err != nil {
		logger.Error("Failed to read sales trend", err, map[string]interface{}{
			"from": from,
		})
		return nil, err
	}
	return rows, nil
}
