// File: internal/repository/repository.go
package repository

import (
	"context"
	"errors"

	"health-insight/internal/model"
)

var (
	// ErrNotFound 查無資料；報告不存在與非本人持有一律回傳此錯誤，不可區分
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken Email 已被註冊（比對不分大小寫）
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository 定義使用者資料的存取介面
// CreateUser 的重複 Email 檢查與寫入為單一原子操作，並行註冊同一 Email 僅一方成功
type UserRepository interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	UpdateUserProfile(ctx context.Context, u *model.User) error
}

// ReportRepository 定義評估報告的存取介面，所有讀取皆以持有者為範圍
type ReportRepository interface {
	CreateReport(ctx context.Context, userID int, m model.Metrics, score float64) (*model.Report, error)
	ListReportsByOwner(ctx context.Context, userID int) ([]model.Report, error)
	GetReportForOwner(ctx context.Context, reportID string, userID int) (*model.Report, error)
}
