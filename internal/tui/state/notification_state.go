package state

// NotificationLevel represents the severity of a notification
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelWarning
	LevelError
)

// maxNotifications bounds the stack; the oldest notice is dropped first
const maxNotifications = 3

// Notification is a single notice with a severity level
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState keeps the notices shown over the grid. Notices stay
// until the next key press dismisses them.
type NotificationState struct {
	notifications []Notification
}

// NewNotificationState creates an empty notification stack
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add pushes a notice
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{Level: level, Message: message})
	if n := len(s.notifications); n > maxNotifications {
		s.notifications = s.notifications[n-maxNotifications:]
	}
}

// Info pushes an informational notice
func (s *NotificationState) Info(message string) { s.Add(LevelInfo, message) }

// Warn pushes a warning
func (s *NotificationState) Warn(message string) { s.Add(LevelWarning, message) }

// Error pushes an error notice
func (s *NotificationState) Error(message string) { s.Add(LevelError, message) }

// Clear removes all notices
func (s *NotificationState) Clear() {
	s.notifications = nil
}

// All returns the current notices, oldest first
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny reports whether any notice is shown
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}
