package models

import "time"

type Department struct {
	ID             uint     `gorm:"primaryKey"`
	Name           string   `gorm:"size:100;not null"`
	OnboardingList []string `gorm:"serializer:json"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Users []User
}
