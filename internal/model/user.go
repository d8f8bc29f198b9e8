package model

import (
	"time"

	"gorm.io/gorm"
)

// Role is the staff role carried in the session token. ADMIN has
// unrestricted panel access; SALES is kept out of a fixed set of
// management areas.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleSales Role = "SALES"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSales
}

type User struct {
	gorm.Model
	FirstName    string    `gorm:"column:first_name;not null"`
	LastName     string    `gorm:"column:last_name;not null"`
	Phone        string    `gorm:"column:phone"`
	Email        string    `gorm:"column:email;unique;not null"`
	Password     string    `gorm:"column:password;not null"`
	Role         Role      `gorm:"column:role;type:varchar(16);default:'SALES';not null"`
	Active       bool      `gorm:"column:active;default:true;not null"`
	LastLogin    time.Time `gorm:"column:last_login"`
	TokenVersion int       `gorm:"column:token_version;default:1;not null"`
}
