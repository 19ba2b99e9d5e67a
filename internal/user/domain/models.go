package domain

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID           int64             `json:"id" gorm:"primaryKey"`
	Username     string            `json:"username" gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string            `json:"-" gorm:"type:text;not null"`
	Preferences  datatypes.JSONMap `json:"preferences" gorm:"type:jsonb"`
}

func (User) TableName() string { return "users" }

// Preferences is the profile slice the insight and assistant layers care
// about. Values are free text seeded from the demo users.
type Preferences struct {
	Diet   string `json:"diet"`
	Health string `json:"health"`
}

type Response struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Preferences Preferences `json:"preferences"`
}

type Service interface {
	Login(ctx context.Context, username, password string) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	// Preferences returns nil (not an error) when the user id is unknown;
	// callers fall back to a default context.
	Preferences(ctx context.Context, id int64) (*Preferences, error)
}

type Repository interface {
	FindByUsername(ctx context.Context, db *gorm.DB, username string) (*User, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*User, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]User, error)
}

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrNotFound           = errors.New("not_found")
)
