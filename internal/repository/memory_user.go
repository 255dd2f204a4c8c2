// File: internal/repository/memory_user.go
package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"health-insight/internal/model"
)

// MemoryUserRepository 以記憶體 map 實作 UserRepository，供測試與免資料庫部署使用
// 重複 Email 檢查與寫入在同一把鎖內完成，並行註冊同一 Email 僅一方成功
type MemoryUserRepository struct {
	mu      sync.Mutex
	nextID  int
	byID    map[int]model.User
	byEmail map[string]int
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{
		byID:    map[int]model.User{},
		byEmail: map[string]int{},
	}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error) {
	key := strings.ToLower(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[key]; exists {
		return nil, ErrEmailTaken
	}

	r.nextID++
	u := model.User{
		ID:           r.nextID,
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.byID[u.ID] = u
	r.byEmail[key] = u.ID
	return &u, nil
}

func (r *MemoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *MemoryUserRepository) GetUserByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// UpdateUserProfile 僅更新個人資料欄位；Email 建立後不可變更
func (r *MemoryUserRepository) UpdateUserProfile(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[u.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Name = u.Name
	stored.DateOfBirth = u.DateOfBirth
	stored.Gender = u.Gender
	stored.PhoneNumber = u.PhoneNumber
	r.byID[u.ID] = stored
	return nil
}
