// File: internal/repository/memory_report.go
package repository

import (
	"context"
	"sync"
	"time"

	"health-insight/internal/model"

	"github.com/google/uuid"
)

// MemoryReportRepository 以記憶體 map 實作 ReportRepository
// 寫入持 Lock、讀取持 RLock 並回傳複本，list 永遠看到一致的快照
type MemoryReportRepository struct {
	mu      sync.RWMutex
	byID    map[string]model.Report
	byOwner map[int][]string
}

func NewMemoryReportRepository() *MemoryReportRepository {
	return &MemoryReportRepository{
		byID:    map[string]model.Report{},
		byOwner: map[int][]string{},
	}
}

func (r *MemoryReportRepository) CreateReport(ctx context.Context, userID int, m model.Metrics, score float64) (*model.Report, error) {
	rep := model.Report{
		ID:        uuid.NewString(),
		UserID:    userID,
		Metrics:   m,
		Score:     score,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.byID[rep.ID] = rep
	r.byOwner[userID] = append(r.byOwner[userID], rep.ID)
	r.mu.Unlock()

	return &rep, nil
}

// ListReportsByOwner 依建立順序回傳持有者的所有報告
func (r *MemoryReportRepository) ListReportsByOwner(ctx context.Context, userID int) ([]model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byOwner[userID]
	reports := make([]model.Report, 0, len(ids))
	for _, id := range ids {
		reports = append(reports, r.byID[id])
	}
	return reports, nil
}

// GetReportForOwner 不存在與非本人持有皆回傳 ErrNotFound，呼叫端無法分辨兩者
func (r *MemoryReportRepository) GetReportForOwner(ctx context.Context, reportID string, userID int) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[reportID]
	if !ok || rep.UserID != userID {
		return nil, ErrNotFound
	}
	return &rep, nil
}
