package models

import "time"

type UserRole string

const (
	RoleEmployee  UserRole = "employee"
	RoleSuperuser UserRole = "superuser"
)

type User struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:100;not null"`
	Email            string `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash     string `gorm:"size:255;not null"`
	Phone            string `gorm:"size:20"`
	DepartmentID     *uint
	Department       *Department
	DateOfEmployment string `gorm:"size:20"` // kept verbatim as dd/mm/yyyy
	RecentHire       bool
	Role             UserRole `gorm:"size:20;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
