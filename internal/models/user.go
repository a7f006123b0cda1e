package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Username     string          `gorm:"size:50;uniqueIndex;not null" json:"username"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Coin         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"coin"`
	CreatedAt    time.Time       `json:"created_at"`
}

// PublicUser is the user projection safe to return to any caller.
type PublicUser struct {
	ID        uint            `json:"user_id"`
	Username  string          `json:"username"`
	Coin      decimal.Decimal `json:"coin"`
	CreatedAt time.Time       `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Coin:      u.Coin,
		CreatedAt: u.CreatedAt,
	}
}
