package domain

import "time"

type Role string

const (
	RolePatient  Role = "patient"
	RoleCHW      Role = "chw"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID                int64
	PhoneNumber       string
	FullName          string
	Email             string
	Location          string
	PreferredLanguage string
	Role              Role
	IsVerified        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
