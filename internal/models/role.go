package models

import (
	"fmt"
	"strings"
)

// Role определяет набор операций, доступных пользователю. Задается при регистрации.
type Role string

const (
	RolePublic     Role = "public"
	RoleVolunteer  Role = "volunteer"
	RoleGovernment Role = "government"
	RoleNGO        Role = "ngo"
)

// Roles - все допустимые роли
var Roles = []Role{RolePublic, RoleVolunteer, RoleGovernment, RoleNGO}

// Valid проверяет, что роль входит в перечисление
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole нормализует строку и возвращает роль.
// Пустая строка означает роль по умолчанию (public).
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RolePublic, nil
	}
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return role, nil
}

// Identity - аутентифицированный вызывающий, извлеченный из токена сессии
type Identity struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}
