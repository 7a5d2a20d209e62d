// Package models содержит доменные структуры тренажёрного зала:
// пользователей, клиентов, дисциплины, абонементы и подписки на занятия.
package models

import "fmt"

// Role представляет роль пользователя системы. Роли образуют закрытое
// перечисление: значение вне списка констант не проходит ParseRole.
type Role string

const (
	// RoleAdmin — администратор, управляет каталогом абонементов.
	RoleAdmin Role = "Admin"
	// RoleTrainer — тренер, отмечает посещения занятий.
	RoleTrainer Role = "Trainer"
)

// ParseRole преобразует строку в Role, возвращая ошибку для неизвестных значений.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTrainer:
		return RoleTrainer, nil
	default:
		return "", fmt.Errorf("unknown role: %q", s)
	}
}

// In проверяет вхождение роли в набор требуемых ролей.
func (r Role) In(required ...Role) bool {
	for _, req := range required {
		if r == req {
			return true
		}
	}
	return false
}
