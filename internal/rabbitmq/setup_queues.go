package rabbitmq

// EventsExchange — exchange для событий жизненного цикла подписок.
const EventsExchange = "gym.events"

// Ключи маршрутизации публикуемых событий.
const (
	KeySubscriptionCreated = "subscription.created"
	KeySubscriptionRenewed = "subscription.renewed"
	KeySubscriptionExpired = "subscription.expired"
	KeyAttendanceRecorded  = "attendance.recorded"
)

// QueueConfig описывает очередь и её ключ маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// GetEventQueues возвращает очереди событий подписок для объявления при старте.
func GetEventQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "gym.subscriptions.created", RoutingKey: KeySubscriptionCreated},
		{QueueName: "gym.subscriptions.renewed", RoutingKey: KeySubscriptionRenewed},
		{QueueName: "gym.subscriptions.expired", RoutingKey: KeySubscriptionExpired},
		{QueueName: "gym.attendances.recorded", RoutingKey: KeyAttendanceRecorded},
	}
}
