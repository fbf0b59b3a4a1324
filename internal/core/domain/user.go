package domain

import (
	"net/url"
	"strings"
	"time"
)

// Role is a flat RBAC role carried by every principal and embedded in its session token.
type Role string

const (
	RoleAdmin         Role = "Admin"
	RoleDoctor        Role = "Doctor"
	RoleNurse         Role = "Nurse"
	RoleStaff         Role = "Staff"
	RoleReceptionist  Role = "Receptionist"
	RolePharmacist    Role = "Pharmacist"
	RoleLabTechnician Role = "Lab Technician"
)

// Roles lists every role a principal may hold.
var Roles = []Role{
	RoleAdmin, RoleDoctor, RoleNurse, RoleStaff,
	RoleReceptionist, RolePharmacist, RoleLabTechnician,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	for _, known := range Roles {
		if r == known {
			return true
		}
	}
	return false
}

// Principal models an authenticated hospital staff member.
type Principal struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       *string   `json:"avatar"`
	CreatedAt    time.Time `json:"-"`
}

// AvatarURL returns the generated initials avatar used when a principal has none.
func AvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(strings.TrimSpace(name)) + "&background=0D9488&color=fff"
}

// NormalizeEmail lowercases and trims an address before lookup or storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
