package model

import "time"

// NotificationType categorizes a notification for display.
type NotificationType string

const (
	// NotificationInfo is a neutral informational notice.
	NotificationInfo NotificationType = "info"
	// NotificationWarning flags something needing attention.
	NotificationWarning NotificationType = "warning"
	// NotificationSuccess celebrates a completed action or milestone.
	NotificationSuccess NotificationType = "success"
	// NotificationError reports a failure.
	NotificationError NotificationType = "error"
)

// Notification is a user-facing notice created as a side effect of other
// mutations (or direct calls). Never user-edited beyond the read flag.
type Notification struct {
	Date    time.Time
	ID      string
	Title   string
	Message string
	Type    NotificationType
	Read    bool
}
