package http

import (
	"net/http"
	"time"

	"loginsvc/internal/adapters/http/middleware"
	"loginsvc/internal/logger"
)

type RouterDeps struct {
	Login *LoginRouter
	Log   logger.Logger
}

func NewRouter(deps *RouterDeps) http.Handler {
	mux := http.NewServeMux()

	globalMw := middleware.New()
	globalMw.Use(middleware.RequestID())
	globalMw.Use(middleware.Logging(deps.Log))
	globalMw.Use(middleware.Recover(deps.Log))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.Handle("POST /login", deps.Login)

	return globalMw.Apply(mux)
}

func NewServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
}
