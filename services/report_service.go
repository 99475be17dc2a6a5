package services

import (
	"time"

	"github.com/TarunBali/menu-magic-mobile-dine/repository"
)

// ReportService mocks the spreadsheet export: it aggregates the day's orders
// and hands back a placeholder sheet URL after the simulated delay.
type ReportService struct {
	OrderRepo *repository.OrderRepository
	Delay     time.Duration
}

func NewReportService(repo *repository.OrderRepository, delay time.Duration) *ReportService {
	return &ReportService{OrderRepo: repo, Delay: delay}
}

type ExportResult struct {
	Success  bool   `json:"success"`
	Date     string `json:"date"`
	Orders   int64  `json:"orders"`
	Revenue  int64  `json:"revenue"`
	SheetURL string `json:"url"`
}

func (s *ReportService) ExportDay(date string) (*ExportResult, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	count, revenue, err := s.OrderRepo.TotalsForDay(date)
	if err != nil {
		return nil, err
	}

	time.Sleep(s.Delay)

	return &ExportResult{
		Success:  true,
		Date:     date,
		Orders:   count,
		Revenue:  revenue,
		SheetURL: "https://docs.google.com/spreadsheets/d/example-sheet-id",
	}, nil
}
