package stats

import (
	"context"
	"time"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/stats"
	"golang.org/x/sync/errgroup"
)

const defaultHistoryLimit = 100

// StatsServiceImpl serves the statistics screens. Every call fetches
// fresh rows and recomputes from scratch; nothing is cached between calls.
type StatsServiceImpl struct {
	recordRepo record.WorkRecordRepository
}

func NewStatsService(recordRepo record.WorkRecordRepository) stats.StatsService {
	return &StatsServiceImpl{
		recordRepo: recordRepo,
	}
}

// Overview returns the combined statistics payload using parallel goroutines,
// one fetch+aggregate per section.
func (s *StatsServiceImpl) Overview(ctx context.Context) (*stats.OverviewResponse, error) {
	var (
		totals    stats.GlobalTotals
		ranking   []stats.RankingEntry
		dateSpans []stats.EmployeeDateSpan
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totals, err = s.Totals(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		ranking, err = s.Ranking(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		dateSpans, err = s.DateSpans(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats.OverviewResponse{
		Totals:    totals,
		Ranking:   ranking,
		DateSpans: dateSpans,
	}, nil
}

func (s *StatsServiceImpl) Totals(ctx context.Context) (stats.GlobalTotals, error) {
	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return stats.GlobalTotals{}, err
	}
	return ComputeGlobalTotals(records), nil
}

func (s *StatsServiceImpl) Ranking(ctx context.Context) ([]stats.RankingEntry, error) {
	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeRanking(records), nil
}

func (s *StatsServiceImpl) DateSpans(ctx context.Context) ([]stats.EmployeeDateSpan, error) {
	records, err := s.recordRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDateSpans(records), nil
}

func (s *StatsServiceImpl) PresenceHistory(ctx context.Context, limit int) ([]stats.PresenceRow, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.recordRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ProjectPresence(records, time.Now()), nil
}

func (s *StatsServiceImpl) PaymentHistory(ctx context.Context, limit int) ([]stats.PaymentRow, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.recordRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ProjectPaymentStatus(records), nil
}
