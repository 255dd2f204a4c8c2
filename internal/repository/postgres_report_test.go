// File: internal/repository/postgres_report_test.go
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-insight/internal/database"
	"health-insight/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeCreatedAtRow 僅回填 created_at，供 CreateReport 使用
type fakeCreatedAtRow struct {
	scanErr   error
	createdAt time.Time
}

func (r *fakeCreatedAtRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*time.Time) = r.createdAt
	return nil
}

// fakeReportRow 回填完整報告欄位，供 GetReportForOwner 使用
type fakeReportRow struct {
	scanErr error
	report  *model.Report
}

func scanReportDest(rep *model.Report, dest []any) {
	*dest[0].(*string) = rep.ID
	*dest[1].(*int) = rep.UserID
	*dest[2].(*float64) = rep.Metrics.Pregnancies
	*dest[3].(*float64) = rep.Metrics.Glucose
	*dest[4].(*float64) = rep.Metrics.BloodPressure
	*dest[5].(*float64) = rep.Metrics.SkinThickness
	*dest[6].(*float64) = rep.Metrics.Insulin
	*dest[7].(*float64) = rep.Metrics.BMI
	*dest[8].(*float64) = rep.Metrics.DiabetesPedigree
	*dest[9].(*float64) = rep.Metrics.Age
	*dest[10].(*float64) = rep.Score
	*dest[11].(*time.Time) = rep.CreatedAt
}

func (r *fakeReportRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	scanReportDest(r.report, dest)
	return nil
}

// fakeReportRows 實作 pgx.Rows，依序回傳預先準備的報告
type fakeReportRows struct {
	idx     int
	reports []model.Report
}

func (r *fakeReportRows) Close()                                       {}
func (r *fakeReportRows) Err() error                                   { return nil }
func (r *fakeReportRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeReportRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeReportRows) Next() bool {
	r.idx++
	return r.idx <= len(r.reports)
}
func (r *fakeReportRows) Scan(dest ...any) error {
	scanReportDest(&r.reports[r.idx-1], dest)
	return nil
}
func (r *fakeReportRows) Values() ([]any, error) { return nil, nil }
func (r *fakeReportRows) RawValues() [][]byte    { return nil }
func (r *fakeReportRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestPostgresReportRepository(t *testing.T) {
	now := time.Now().UTC()
	m := model.Metrics{Glucose: 135, BMI: 24.5, Age: 35, BloodPressure: 80, DiabetesPedigree: 0.5}
	ctx := context.Background()

	t.Run("CreateReport success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 11)
				return &fakeCreatedAtRow{createdAt: now}
			},
		}
		repo := NewPostgresReportRepository(db)
		rep, err := repo.CreateReport(ctx, 1, m, 0.45)
		require.NoError(t, err)
		require.NotEmpty(t, rep.ID)
		require.Equal(t, 1, rep.UserID)
		require.Equal(t, 0.45, rep.Score)
		require.Equal(t, now, rep.CreatedAt)
	})

	t.Run("CreateReport error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCreatedAtRow{scanErr: errors.New("insert")}
			},
		}
		repo := NewPostgresReportRepository(db)
		_, err := repo.CreateReport(ctx, 1, m, 0.45)
		require.Error(t, err)
	})

	t.Run("ListReportsByOwner success", func(t *testing.T) {
		stored := []model.Report{
			{ID: "r1", UserID: 1, Metrics: m, Score: 0.45, CreatedAt: now},
			{ID: "r2", UserID: 1, Metrics: m, Score: 0.5, CreatedAt: now.Add(time.Minute)},
		}
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeReportRows{reports: stored}, nil
			},
		}
		repo := NewPostgresReportRepository(db)
		list, err := repo.ListReportsByOwner(ctx, 1)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "r1", list[0].ID)
		require.Equal(t, "r2", list[1].ID)
	})

	t.Run("ListReportsByOwner query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		repo := NewPostgresReportRepository(db)
		_, err := repo.ListReportsByOwner(ctx, 1)
		require.Error(t, err)
	})

	t.Run("GetReportForOwner success", func(t *testing.T) {
		rep := &model.Report{ID: "r1", UserID: 1, Metrics: m, Score: 0.45, CreatedAt: now}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "r1", args[0])
				require.Equal(t, 1, args[1])
				return &fakeReportRow{report: rep}
			},
		}
		repo := NewPostgresReportRepository(db)
		got, err := repo.GetReportForOwner(ctx, "r1", 1)
		require.NoError(t, err)
		require.Equal(t, rep.ID, got.ID)
	})

	t.Run("GetReportForOwner not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeReportRow{scanErr: pgx.ErrNoRows}
			},
		}
		repo := NewPostgresReportRepository(db)
		_, err := repo.GetReportForOwner(ctx, "missing", 1)
		require.ErrorIs(t, err, ErrNotFound)
	})
}
