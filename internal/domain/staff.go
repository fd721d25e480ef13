package domain

import (
	"time"

	"github.com/google/uuid"
)

type StaffType string

const (
	StaffTypeManager StaffType = "Manager"
	StaffTypeStaff   StaffType = "Staff"
	StaffTypeChef    StaffType = "Chef"
)

type StaffStatus string

const (
	StaffStatusFullTime StaffStatus = "FullTime"
	StaffStatusPartTime StaffStatus = "PartTime"
)

type Staff struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	FullName     string      `json:"fullName"`
	Phone        string      `json:"phone"`
	Email        string      `json:"email"`
	StaffType    StaffType   `json:"staffType"`
	Status       StaffStatus `json:"status"`
	CreatedAt    time.Time   `json:"createdAt"`
	Version      int32       `json:"-"`
}
