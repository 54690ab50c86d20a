package models

import "time"

type User struct {
	UserID       int64
	Email        string
	PasswordHash string
	Nickname     string
	CreatedAt    time.Time
}
