package http

import (
	"encoding/json"
	"net/http"

	"loginsvc/internal/domain"
)

// HTTPRequest is the transport-free shape the login router works on. A nil
// Body means the request carried no JSON object.
type HTTPRequest struct {
	Body *domain.LoginRequest
}

type HTTPResponse struct {
	StatusCode int
	Body       any
}

func BadRequest(err *APIError) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusBadRequest, Body: err}
}

func Unauthorized() HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusUnauthorized, Body: UnauthorizedError()}
}

func ServerErrorResponse() HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusInternalServerError, Body: ServerError()}
}

func OK(body any) HTTPResponse {
	return HTTPResponse{StatusCode: http.StatusOK, Body: body}
}

func writeJSON(w http.ResponseWriter, res HTTPResponse) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	if res.Body == nil {
		_, err := w.Write([]byte(`{}`))
		return err
	}
	return json.NewEncoder(w).Encode(res.Body)
}
