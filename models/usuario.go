package models

import (
	"strings"
	"time"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type Usuario struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Nome        string    `json:"nome" gorm:"size:120;not null"`
	Email       string    `json:"email" gorm:"size:120;unique;not null"`
	Senha       string    `json:"senha,omitempty" gorm:"size:255;not null"`
	Role        string    `json:"role" gorm:"size:10;not null;default:USER"`
	DataCriacao time.Time `json:"data_criacao" gorm:"autoCreateTime"`
}

// IsAdminMaster reports whether this is the protected master administrator.
// Identified by the name marker or by being the first admin created (ID = 1).
func (u *Usuario) IsAdminMaster() bool {
	if strings.Contains(strings.ToLower(u.Nome), "administrador master") {
		return true
	}
	return u.ID == 1 && u.Role == RoleAdmin
}
