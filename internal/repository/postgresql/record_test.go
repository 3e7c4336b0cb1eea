package postgresql

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

var testDB *database.DB

// testInit connects to TEST_DATABASE_URL and creates the schema; tests
// skip when no database is provided.
func testInit(t *testing.T) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping repository integration tests")
	}

	if testDB != nil {
		return
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	require.NoError(t, err, "failed to connect to test database")

	ctx := context.Background()
	_, err = testDB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS work_records (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			name text NOT NULL,
			tip_share_amount numeric(12,2) NOT NULL,
			work_date date NOT NULL,
			check_in text NOT NULL DEFAULT '',
			check_out text NOT NULL DEFAULT '',
			advance numeric(12,2),
			advance_type text,
			paid boolean NOT NULL DEFAULT false,
			payment_method text NOT NULL DEFAULT 'pix',
			note text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW(),
			UNIQUE (name, work_date)
		)
	`)
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS day_notes (
			work_date date PRIMARY KEY,
			note text NOT NULL DEFAULT '',
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)
	`)
	require.NoError(t, err)
}

func truncateRecordTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testDB.Exec(ctx, "TRUNCATE TABLE work_records, day_notes")
	require.NoError(t, err)
}

func TestWorkRecordRepository_CreateAndGet(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	advance := "20.00"
	advanceType := record.AdvancePix
	created, err := repo.Create(ctx, record.WorkRecord{
		Name:           "Ana",
		TipShareAmount: "100.50",
		WorkDate:       "2024-01-10",
		CheckIn:        "08:00",
		CheckOut:       "17:00",
		Advance:        &advance,
		AdvanceType:    &advanceType,
		Paid:           true,
		PaymentMethod:  "pix",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "100.50", created.TipShareAmount, "amount survives byte for byte")
	assert.Equal(t, "2024-01-10", created.WorkDate)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.NotNil(t, got.Advance)
	assert.Equal(t, "20.00", *got.Advance)
	require.NotNil(t, got.AdvanceType)
	assert.Equal(t, record.AdvancePix, *got.AdvanceType)
}

func TestWorkRecordRepository_GetByID_NotFound(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	_, err := repo.GetByID(ctx, "0b9fc90f-4a33-4bd7-8a4f-95e90c2055a1")
	assert.ErrorIs(t, err, record.ErrRecordNotFound)
}

func TestWorkRecordRepository_GetByNameAndDate(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	_, err := repo.Create(ctx, record.WorkRecord{
		Name:           "Ana",
		TipShareAmount: "50.00",
		WorkDate:       "2024-01-10",
	})
	require.NoError(t, err)

	found, err := repo.GetByNameAndDate(ctx, "Ana", "2024-01-10")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Ana", found.Name)

	missing, err := repo.GetByNameAndDate(ctx, "Ana", "2024-01-11")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestWorkRecordRepository_UpdateAndDelete(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	created, err := repo.Create(ctx, record.WorkRecord{
		Name:           "Bia",
		TipShareAmount: "80.00",
		WorkDate:       "2024-01-10",
	})
	require.NoError(t, err)

	created.TipShareAmount = "95.25"
	created.Paid = true
	require.NoError(t, repo.Update(ctx, created))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "95.25", got.TipShareAmount)
	assert.True(t, got.Paid)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), record.ErrRecordNotFound)
}

func TestWorkRecordRepository_ListByDateAndDistinctNames(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	for _, rec := range []record.WorkRecord{
		{Name: "Caio", TipShareAmount: "10.00", WorkDate: "2024-01-10"},
		{Name: "Ana", TipShareAmount: "20.00", WorkDate: "2024-01-10"},
		{Name: "Ana", TipShareAmount: "30.00", WorkDate: "2024-01-11"},
	} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	day, err := repo.ListByDate(ctx, "2024-01-10")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "Ana", day[0].Name, "name ordered")
	assert.Equal(t, "Caio", day[1].Name)

	names, err := repo.DistinctNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ana", "Caio"}, names)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWorkRecordRepository_DayNotes(t *testing.T) {
	testInit(t)
	ctx := context.Background()
	truncateRecordTables(t, ctx)
	repo := NewWorkRecordRepository(testDB)

	_, err := repo.GetDayNote(ctx, "2024-01-10")
	assert.ErrorIs(t, err, record.ErrDayNoteNotFound)

	saved, err := repo.UpsertDayNote(ctx, record.DayNote{WorkDate: "2024-01-10", Note: "busy night"})
	require.NoError(t, err)
	assert.Equal(t, "busy night", saved.Note)

	replaced, err := repo.UpsertDayNote(ctx, record.DayNote{WorkDate: "2024-01-10", Note: "quiet actually"})
	require.NoError(t, err)
	assert.Equal(t, "quiet actually", replaced.Note)

	got, err := repo.GetDayNote(ctx, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, "quiet actually", got.Note)
	assert.Equal(t, "2024-01-10", got.WorkDate)
}
