package models

import "time"

// Subscription представляет подписку клиента на занятия одной дисциплины.
// На пару (client_id, discipline_id) существует не более одной подписки:
// повторная покупка абонемента той же дисциплины продлевает её.
type Subscription struct {
	ID               int64      `json:"id"`
	ClientID         int64      `json:"client_id"`
	DisciplineID     int64      `json:"discipline_id"`
	RemainingClasses int        `json:"remaining_classes"`
	ExpiresAt        time.Time  `json:"expires_at"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty"`
}

// ClassAttendance представляет запись о посещении занятия. Журнал только
// пополняется; не более одной записи на подписку за календарный день.
type ClassAttendance struct {
	ID             int64     `json:"id"`
	SubscriptionID int64     `json:"subscription_id"`
	AttendedAt     time.Time `json:"attended_at"`
}

// DummySubscription используется для приёма данных из JSON-запроса
// на покупку абонемента (создание или продление подписки).
type DummySubscription struct {
	ClientID     int64 `json:"client_id" validate:"required,gt=0"`
	MembershipID int64 `json:"membership_id" validate:"required,gt=0"`
}

// DummyAttendance используется для приёма данных из JSON-запроса
// на отметку посещения занятия.
type DummyAttendance struct {
	SubscriptionID int64 `json:"subscription_id" validate:"required,gt=0"`
}
