package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"loginsvc/internal/domain"
	"loginsvc/internal/logger"
)

const maxBodyBytes = 1 << 20

type LoginRouter struct {
	authUseCase domain.AuthUseCase
	log         logger.Logger
}

func NewLoginRouter(authUseCase domain.AuthUseCase, log logger.Logger) *LoginRouter {
	if log == nil {
		log = logger.Nop()
	}
	return &LoginRouter{
		authUseCase: authUseCase,
		log:         log,
	}
}

// Route always returns a response, even when the auth use case panics.
func (r *LoginRouter) Route(ctx context.Context, req *HTTPRequest) (res HTTPResponse) {
	defer func() {
		if rec := recover(); rec != nil {
			r.log.Error("login: auth use case panic", "panic", rec)
			res = ServerErrorResponse()
		}
	}()

	if req == nil || req.Body == nil || isNil(r.authUseCase) {
		return ServerErrorResponse()
	}

	email, password := req.Body.Email, req.Body.Password
	if email == "" {
		return BadRequest(MissingParamError("email"))
	}
	if password == "" {
		return BadRequest(MissingParamError("password"))
	}

	accessToken, err := r.authUseCase.Auth(ctx, email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return Unauthorized()
		}

		r.log.Error("login: auth failed", "error", err)
		return ServerErrorResponse()
	}

	if accessToken == "" {
		return Unauthorized()
	}

	return OK(domain.LoginResponse{AccessToken: accessToken})
}

func (r *LoginRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer req.Body.Close()

	var body *domain.LoginRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, HTTPResponse{
			StatusCode: http.StatusBadRequest,
			Body:       map[string]string{"error": "invalid request body"},
		})
		return
	}

	res := r.Route(req.Context(), &HTTPRequest{Body: body})
	if err := writeJSON(w, res); err != nil {
		r.log.Warn("login: failed to write response", "error", err)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
