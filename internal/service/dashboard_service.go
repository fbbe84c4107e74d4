package service

import (
	"time"

	"go-challan-book/internal/model"
	"go-challan-book/internal/repository"
	"go-challan-book/internal/stats"
)

type DashboardService interface {
	GetStats() (*DashboardStats, error)
	GetStatsForDateRange(start, end time.Time) (*DashboardStats, error)
}

// DashboardStats is the API shape of the dashboard summary
type DashboardStats struct {
	TotalChallans   int                     `json:"total_challans"`
	TotalAmount     float64                 `json:"total_amount"`
	UniqueCustomers int                     `json:"unique_customers"`
	AverageAmount   float64                 `json:"average_amount"`
	RecentChallans  []model.ChallanResponse `json:"recent_challans"`
	MonthlyStats    []stats.MonthlyStat     `json:"monthly_stats"`
}

type dashboardService struct {
	challanRepo repository.ChallanRepository
}

func NewDashboardService(challanRepo repository.ChallanRepository) DashboardService {
	return &dashboardService{challanRepo: challanRepo}
}

// GetStats fetches the full challan list date-descending and reduces it.
// Date-range filtering happens here, client-side over the full fetch, not
// in the store query.
func (s *dashboardService) GetStats() (*DashboardStats, error) {
	challans, err := s.challanRepo.FindAllByDate()
	if err != nil {
		return nil, err
	}
	return toDashboardStats(stats.Compute(challans)), nil
}

func (s *dashboardService) GetStatsForDateRange(start, end time.Time) (*DashboardStats, error) {
	challans, err := s.challanRepo.FindAllByDate()
	if err != nil {
		return nil, err
	}
	filtered := stats.FilterByDateRange(challans, start, end)
	return toDashboardStats(stats.Compute(filtered)), nil
}

func toDashboardStats(computed stats.Stats) *DashboardStats {
	return &DashboardStats{
		TotalChallans:   computed.TotalChallans,
		TotalAmount:     computed.TotalAmount,
		UniqueCustomers: computed.UniqueCustomers,
		AverageAmount:   computed.AverageAmount,
		RecentChallans:  model.ChallansToResponses(computed.RecentChallans),
		MonthlyStats:    computed.MonthlyStats,
	}
}
