package models

import "time"

// Client представляет клиента зала. Удаление мягкое: active=false и
// заполненный DeletedAt вместо физического удаления строки.
type Client struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	LastName  string     `json:"last_name"`
	Age       int        `json:"age"`
	Phone     string     `json:"phone"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// DummyClient используется для приёма данных клиента из JSON-запроса
// при создании и обновлении.
type DummyClient struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	LastName string `json:"last_name" validate:"required,min=1,max=100"`
	Age      int    `json:"age" validate:"required,gt=0,lt=120"`
	Phone    string `json:"phone" validate:"required,min=5,max=20"`
}
