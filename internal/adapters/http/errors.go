package http

import (
	"encoding/json"
	"fmt"
)

type ErrorKind int

const (
	KindMissingParam ErrorKind = iota + 1
	KindUnauthorized
	KindServer
)

// APIError is the body of every non-2xx login response. Param is only set for
// KindMissingParam.
type APIError struct {
	Kind  ErrorKind
	Param string
}

func MissingParamError(param string) *APIError {
	return &APIError{Kind: KindMissingParam, Param: param}
}

func UnauthorizedError() *APIError {
	return &APIError{Kind: KindUnauthorized}
}

func ServerError() *APIError {
	return &APIError{Kind: KindServer}
}

func (e *APIError) Error() string {
	switch e.Kind {
	case KindMissingParam:
		return fmt.Sprintf("Missing param: %s", e.Param)
	case KindUnauthorized:
		return "Unauthorized"
	default:
		return "Internal error"
	}
}

func (e *APIError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{"error": e.Error()})
}
