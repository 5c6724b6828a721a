package tui

// Status is the lifecycle of the product load.
type Status int

const (
	StatusLoading Status = iota // initial load in flight
	StatusReady                 // products loaded
	StatusFailed                // load failed, error row shown
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MessageType selects the style of the status message line.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageWarning
	MessageError
)

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

func (a *App) clearMessage() {
	a.messageType = MessageInfo
	a.messageText = ""
}
