package models

import "time"

// ClientFilter представляет необязательные условия выборки клиентов.
// Заполненные поля объединяются по AND: равенство для обычных полей,
// >= и <= для границ *_from / *_to. Пустой фильтр возвращает все записи.
type ClientFilter struct {
	Name          *string
	LastName      *string
	Age           *int
	Phone         *string
	Active        *bool
	CreatedAtFrom *time.Time
	CreatedAtTo   *time.Time
	UpdatedAtFrom *time.Time
	UpdatedAtTo   *time.Time
	DeletedAtFrom *time.Time
	DeletedAtTo   *time.Time
}

// SubscriptionFilter представляет необязательные условия выборки подписок.
// Семантика совпадает с ClientFilter: чистая конъюнкция предикатов.
type SubscriptionFilter struct {
	ClientID         *int64
	DisciplineID     *int64
	Active           *bool
	RemainingClasses *int
	ExpiresAtFrom    *time.Time
	ExpiresAtTo      *time.Time
	CreatedAtFrom    *time.Time
	CreatedAtTo      *time.Time
	UpdatedAtFrom    *time.Time
	UpdatedAtTo      *time.Time
	DeletedAtFrom    *time.Time
	DeletedAtTo      *time.Time
}
