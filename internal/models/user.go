package models

import "time"

// User представляет зарегистрированного пользователя системы (сотрудника зала).
type User struct {
	ID           int64     // Числовой идентификатор, попадает в claim user_id
	UID          string    // UUID пользователя
	Username     string    // Имя пользователя (уникальное)
	PasswordHash string    // bcrypt-хэш пароля
	Role         Role      // Роль пользователя, Admin или Trainer
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required"`
}

// DummyLogin используется для приёма учетных данных из JSON-запроса.
type DummyLogin struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}
