// File: internal/repository/postgres_report.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"health-insight/internal/database"
	"health-insight/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresReportRepository 以 PostgreSQL 實作 ReportRepository
type PostgresReportRepository struct {
	db database.DB
}

func NewPostgresReportRepository(db database.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) CreateReport(ctx context.Context, userID int, m model.Metrics, score float64) (*model.Report, error) {
	rep := &model.Report{
		ID:      uuid.NewString(),
		UserID:  userID,
		Metrics: m,
		Score:   score,
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO reports
		   (id, user_id, pregnancies, glucose, blood_pressure, skin_thickness,
		    insulin, bmi, diabetes_pedigree, age, score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at`,
		rep.ID,
		rep.UserID,
		m.Pregnancies,
		m.Glucose,
		m.BloodPressure,
		m.SkinThickness,
		m.Insulin,
		m.BMI,
		m.DiabetesPedigree,
		m.Age,
		rep.Score,
	)
	if err := row.Scan(&rep.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateReport: %w", err)
	}
	return rep, nil
}

// ListReportsByOwner 依建立順序回傳持有者的所有報告
func (r *PostgresReportRepository) ListReportsByOwner(ctx context.Context, userID int) ([]model.Report, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, pregnancies, glucose, blood_pressure, skin_thickness,
		        insulin, bmi, diabetes_pedigree, age, score, created_at
		 FROM reports WHERE user_id = $1
		 ORDER BY created_at, id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListReportsByOwner: %w", err)
	}
	defer rows.Close()

	reports := []model.Report{}
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("ListReportsByOwner: %w", err)
		}
		reports = append(reports, *rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListReportsByOwner: %w", err)
	}
	return reports, nil
}

// GetReportForOwner 查詢同時以 id 與 user_id 為條件
// 不存在與非本人持有皆回傳 ErrNotFound，呼叫端無法分辨兩者
func (r *PostgresReportRepository) GetReportForOwner(ctx context.Context, reportID string, userID int) (*model.Report, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, pregnancies, glucose, blood_pressure, skin_thickness,
		        insulin, bmi, diabetes_pedigree, age, score, created_at
		 FROM reports WHERE id = $1 AND user_id = $2`,
		reportID,
		userID,
	)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetReportForOwner: %w", err)
	}
	return rep, nil
}

func scanReport(row pgx.Row) (*model.Report, error) {
	rep := &model.Report{}
	if err := row.Scan(
		&rep.ID,
		&rep.UserID,
		&rep.Metrics.Pregnancies,
		&rep.Metrics.Glucose,
		&rep.Metrics.BloodPressure,
		&rep.Metrics.SkinThickness,
		&rep.Metrics.Insulin,
		&rep.Metrics.BMI,
		&rep.Metrics.DiabetesPedigree,
		&rep.Metrics.Age,
		&rep.Score,
		&rep.CreatedAt,
	); err != nil {
		return nil, err
	}
	return rep, nil
}
