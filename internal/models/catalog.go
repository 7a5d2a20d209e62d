package models

import "time"

// Discipline представляет направление занятий: "CrossFit", "Yoga" и т.п.
// Удаление мягкое; удаление дисциплины каскадно деактивирует её абонементы.
type Discipline struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
}

// Membership представляет тарифный план: цена, количество занятий и срок
// действия в днях. Справочные данные — подписочные операции их не изменяют.
type Membership struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description,omitempty"`
	Price        float64    `json:"price"`
	DisciplineID int64      `json:"discipline_id"`
	TotalClasses int        `json:"total_classes"`
	DurationDays int        `json:"duration_days"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// DummyDiscipline используется для приёма данных дисциплины из JSON-запроса.
type DummyDiscipline struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

// DummyMembership используется для приёма данных абонемента из JSON-запроса.
type DummyMembership struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	DisciplineID int64   `json:"discipline_id" validate:"required,gt=0"`
	TotalClasses int     `json:"total_classes" validate:"required,gt=0"`
	DurationDays int     `json:"duration_days" validate:"required,gt=0"`
}
