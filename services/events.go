package services

import (
	"github.com/tuananhtran-web/orderbanhmi/entity"
)

// Change event types pushed to live subscribers. "added" is distinguished from
// the others because the toast filter runs only on added notifications.
const (
	ChangeAdded    = "added"
	ChangeModified = "modified"
	ChangeRemoved  = "removed"
)

// EventSink is the live-subscription side of the system. The websocket hub
// implements it; services publish through it after each successful write so
// every subscriber's projection catches up. A nil sink is valid (tests).
type EventSink interface {
	Publish(collection, changeType string, doc any)
	NotificationAdded(n *entity.Notification)
	ForceLogout(userID uint)
}

func publish(sink EventSink, collection, changeType string, doc any) {
	if sink != nil {
		sink.Publish(collection, changeType, doc)
	}
}
