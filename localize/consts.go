package localize

const (
	ErrMsgEmptyMessageID = "Message ID cannot be empty."
)
