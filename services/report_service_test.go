package services

import (
	"testing"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"

	"gorm.io/gorm"
)

func seedReportOrder(t *testing.T, db *gorm.DB, code string, at time.Time, method entity.PaymentMethod, total int64, customDate string, items ...entity.OrderItem) {
	t.Helper()
	mustCreate(t, db, &entity.Order{
		Code:          code,
		Total:         total,
		PaymentMethod: method,
		Status:        entity.OrderCompleted,
		Timestamp:     at.UnixMilli(),
		CustomDate:    customDate,
		Items:         items,
	})
}

func TestRangeSummary(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))

	mar1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	mar2 := time.Date(2026, 3, 2, 12, 0, 0, 0, time.Local)
	apr1 := time.Date(2026, 4, 1, 12, 0, 0, 0, time.Local)

	seedReportOrder(t, db, "order-cash-0000000001", mar1, entity.PaymentCash, 60000, "")
	seedReportOrder(t, db, "order-tfer-0000000002", mar2, entity.PaymentTransfer, 40000, "")
	seedReportOrder(t, db, "order-out--0000000003", apr1, entity.PaymentCash, 99999, "")

	sum, err := svc.RangeSummary("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total != 100000 || sum.OrderCount != 2 {
		t.Errorf("total/count = %d/%d, want 100000/2", sum.Total, sum.OrderCount)
	}
	if sum.Cash != 60000 || sum.Transfer != 40000 {
		t.Errorf("cash/transfer = %d/%d, want 60000/40000", sum.Cash, sum.Transfer)
	}
}

func TestRangeSummaryCustomDateWins(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))

	// Committed in April but backdated into March.
	apr1 := time.Date(2026, 4, 1, 12, 0, 0, 0, time.Local)
	seedReportOrder(t, db, "order-back-0000000001", apr1, entity.PaymentCash, 50000, "2026-03-15")

	sum, err := svc.RangeSummary("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Total != 50000 {
		t.Errorf("backdated order missing from range, total = %d", sum.Total)
	}
}

func TestItemRankingByQuantity(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))

	mar1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	seedReportOrder(t, db, "order-one--0000000001", mar1, entity.PaymentCash, 0, "",
		entity.OrderItem{MenuItemID: 2, Name: "Pork", Price: 25000, Quantity: 2},
		entity.OrderItem{MenuItemID: 4, Name: "Iced Tea", Price: 10000, Quantity: 5},
	)
	seedReportOrder(t, db, "order-two--0000000002", mar1, entity.PaymentCash, 0, "",
		entity.OrderItem{MenuItemID: 2, Name: "Pork", Price: 25000, Quantity: 1},
	)

	ranking, err := svc.ItemRanking("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("ranking entries = %d, want 2", len(ranking))
	}
	if ranking[0].Name != "Iced Tea" || ranking[0].Quantity != 5 {
		t.Errorf("best seller = %s x%d, want Iced Tea x5", ranking[0].Name, ranking[0].Quantity)
	}
	if ranking[1].Quantity != 3 || ranking[1].Total != 75000 {
		t.Errorf("runner-up = x%d/%d, want x3/75000", ranking[1].Quantity, ranking[1].Total)
	}
}

func TestDailySeriesCoversWholeMonth(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(repository.NewOrderRepository(db))

	seedReportOrder(t, db, "order-d05--0000000001",
		time.Date(2026, 2, 5, 9, 0, 0, 0, time.Local), entity.PaymentCash, 30000, "")
	seedReportOrder(t, db, "order-d05b-0000000002",
		time.Date(2026, 2, 5, 18, 0, 0, 0, time.Local), entity.PaymentCash, 20000, "")

	series, err := svc.DailySeries(2026, time.February)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series) != 28 {
		t.Fatalf("february 2026 days = %d, want 28", len(series))
	}
	if series[4].Day != 5 || series[4].Revenue != 50000 {
		t.Errorf("day 5 = %+v, want revenue 50000", series[4])
	}
	if series[0].Revenue != 0 {
		t.Errorf("untouched day should stay zero, got %d", series[0].Revenue)
	}
}
