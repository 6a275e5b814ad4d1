package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID *uint `json:"user_id"`
	User   User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	// Stored as plain strings (YYYY-MM-DD / HH:MM); the composite unique
	// index is what guarantees a slot is sold at most once.
	Date string `gorm:"size:10;not null;uniqueIndex:date_time_idx" json:"date"`
	Time string `gorm:"size:5;not null;uniqueIndex:date_time_idx" json:"time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
