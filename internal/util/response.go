package util

const (
	StatusFailed  = "FAILED"
	StatusPending = "PENDING"
	StatusSuccess = "SUCCESS"
)

// Envelope is the response body shape shared by every endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Failed(message string) Envelope {
	return Envelope{Status: StatusFailed, Message: message}
}

func Pending(message string) Envelope {
	return Envelope{Status: StatusPending, Message: message}
}

func Success(message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}
