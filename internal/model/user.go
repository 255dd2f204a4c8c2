// File: internal/model/user.go
package model

import "time"

// User 使用者資料列，PasswordHash 僅供 repository 與 service 使用，不得回傳給客戶端
type User struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	DateOfBirth  string    `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender       string    `db:"gender" json:"gender,omitempty"`
	PhoneNumber  string    `db:"phone_number" json:"phone_number,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
