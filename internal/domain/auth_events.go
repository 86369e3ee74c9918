package domain

const (
	EventLoginSucceeded = "auth.login_succeeded"
	EventLoginFailed    = "auth.login_failed"
)

type LoginSucceeded struct {
	UserID string
	Email  string
}

type LoginFailed struct {
	Email  string
	Reason string
}
