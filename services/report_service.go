package services

import (
	"sort"
	"time"

	"github.com/tuananhtran-web/orderbanhmi/entity"
	"github.com/tuananhtran-web/orderbanhmi/repository"
)

// ReportService is the read-side aggregator: pure folds over the completed
// order stream, never a write.
type ReportService struct {
	Repo *repository.OrderRepository
}

func NewReportService(repo *repository.OrderRepository) *ReportService {
	return &ReportService{Repo: repo}
}

// orderDateKey groups an order for reporting: the free-text custom date wins
// over the commit timestamp's calendar date.
func orderDateKey(o *entity.Order) string {
	if o.CustomDate != "" {
		return o.CustomDate
	}
	return time.UnixMilli(o.Timestamp).Format("2006-01-02")
}

type RevenueSummary struct {
	Total      int64 `json:"total"`
	Cash       int64 `json:"cash"`
	Transfer   int64 `json:"transfer"`
	OrderCount int   `json:"orderCount"`
}

// RangeSummary folds completed orders whose date key falls in [start, end]
// (YYYY-MM-DD strings, inclusive).
func (s *ReportService) RangeSummary(start, end string) (*RevenueSummary, error) {
	orders, err := s.Repo.ListCompleted()
	if err != nil {
		return nil, err
	}

	sum := &RevenueSummary{}
	for i := range orders {
		key := orderDateKey(&orders[i])
		if key < start || key > end {
			continue
		}
		sum.Total += orders[i].Total
		sum.OrderCount++
		switch orders[i].PaymentMethod {
		case entity.PaymentCash:
			sum.Cash += orders[i].Total
		case entity.PaymentTransfer:
			sum.Transfer += orders[i].Total
		}
	}
	return sum, nil
}

type ItemStat struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Total    int64  `json:"total"`
}

// ItemRanking ranks sold items by quantity over the date range; the first
// entry is the best seller.
func (s *ReportService) ItemRanking(start, end string) ([]ItemStat, error) {
	orders, err := s.Repo.ListCompleted()
	if err != nil {
		return nil, err
	}

	byItem := map[uint]*ItemStat{}
	for i := range orders {
		key := orderDateKey(&orders[i])
		if key < start || key > end {
			continue
		}
		for _, line := range orders[i].Items {
			st, ok := byItem[line.MenuItemID]
			if !ok {
				st = &ItemStat{Name: line.Name}
				byItem[line.MenuItemID] = st
			}
			st.Quantity += line.Quantity
			st.Total += line.Price * int64(line.Quantity)
		}
	}

	ranking := make([]ItemStat, 0, len(byItem))
	for _, st := range byItem {
		ranking = append(ranking, *st)
	}
	sort.Slice(ranking, func(i, j int) bool { return ranking[i].Quantity > ranking[j].Quantity })
	return ranking, nil
}

type DayRevenue struct {
	Day     int   `json:"day"`
	Revenue int64 `json:"revenue"`
}

// DailySeries is the month chart: revenue per calendar day, keyed by the
// commit timestamp.
func (s *ReportService) DailySeries(year int, month time.Month) ([]DayRevenue, error) {
	orders, err := s.Repo.ListCompleted()
	if err != nil {
		return nil, err
	}

	days := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
	series := make([]DayRevenue, days)
	for i := range series {
		series[i].Day = i + 1
	}
	for i := range orders {
		at := time.UnixMilli(orders[i].Timestamp)
		if at.Year() != year || at.Month() != month {
			continue
		}
		series[at.Day()-1].Revenue += orders[i].Total
	}
	return series, nil
}
