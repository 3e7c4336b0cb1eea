package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecordRepo serves canned rows to the stats service.
type fakeRecordRepo struct {
	record.WorkRecordRepository

	records []record.WorkRecord
	err     error

	lastLimit int
}

func (f *fakeRecordRepo) ListAll(ctx context.Context) ([]record.WorkRecord, error) {
	return f.records, f.err
}

func (f *fakeRecordRepo) ListRecent(ctx context.Context, limit int) ([]record.WorkRecord, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.records) {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func TestStatsService_Overview(t *testing.T) {
	repo := &fakeRecordRepo{
		records: []record.WorkRecord{
			rec("Ana", "100", true, "2024-01-01"),
			rec("Ana", "50", false, "2024-01-02"),
			rec("Bia", "200", true, "2024-01-01"),
		},
	}
	svc := NewStatsService(repo)

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, overview.Totals.RecordCount)
	assert.True(t, overview.Totals.GrandTotal.Equal(decimal.NewFromInt(350)))
	require.Len(t, overview.Ranking, 2)
	assert.Equal(t, "Bia", overview.Ranking[0].Name)
	assert.Len(t, overview.DateSpans, 2)
}

func TestStatsService_Overview_FetchError(t *testing.T) {
	repo := &fakeRecordRepo{err: errors.New("connection refused")}
	svc := NewStatsService(repo)

	_, err := svc.Overview(context.Background())
	assert.Error(t, err)
}

func TestStatsService_PresenceHistory_DefaultLimit(t *testing.T) {
	repo := &fakeRecordRepo{}
	svc := NewStatsService(repo)

	_, err := svc.PresenceHistory(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, defaultHistoryLimit, repo.lastLimit)
}

func TestStatsService_PaymentHistory_PreservesOrder(t *testing.T) {
	repo := &fakeRecordRepo{
		records: []record.WorkRecord{
			{ID: "3", Name: "Caio", WorkDate: "2024-06-03", Paid: false},
			{ID: "2", Name: "Bia", WorkDate: "2024-06-02", Paid: true},
			{ID: "1", Name: "Ana", WorkDate: "2024-06-01", Paid: false},
		},
	}
	svc := NewStatsService(repo)

	rows, err := svc.PaymentHistory(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "3", rows[0].ID)
	assert.Equal(t, "2", rows[1].ID)
	assert.Equal(t, "1", rows[2].ID)
}
