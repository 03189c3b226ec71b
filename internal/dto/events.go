package dto

// SendCodeEvent is published to the SMS topic when a verification code
// needs to go out. The dispatcher consumes it and talks to the gateway.
type SendCodeEvent struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}
