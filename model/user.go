package model

import "time"

type User struct {
	CreatedAt    time.Time `json:"created_at"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	PasswordHash []byte    `json:"-"`
}
