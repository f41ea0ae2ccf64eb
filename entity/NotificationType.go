package entity

type NotificationType string

const (
	NotifySystem NotificationType = "system"
	NotifyOrder  NotificationType = "order"
	NotifyShift  NotificationType = "shift"
)
