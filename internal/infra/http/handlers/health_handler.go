package handlers

import (
	"context"
	"net/http"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ConnectionState interface {
	IsClosed() bool
}

type HealthHandler struct {
	Cache          Pinger
	CacheName      string
	Broker         ConnectionState
	MailConfigured bool
	StartTime      time.Time
	Version        string
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(cache Pinger, cacheName string, broker ConnectionState, mailConfigured bool) *HealthHandler {
	return &HealthHandler{
		Cache:          cache,
		CacheName:      cacheName,
		Broker:         broker,
		MailConfigured: mailConfigured,
		StartTime:      time.Now(),
		Version:        "1.0.0",
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		err := h.Cache.Ping(ctx)
		cancel()
		if err != nil {
			deps["cache"] = "unhealthy: " + err.Error()
		} else {
			deps["cache"] = "healthy (" + h.CacheName + ")"
		}
	} else {
		deps["cache"] = "not configured"
	}

	if h.Broker != nil {
		if h.Broker.IsClosed() {
			deps["rabbitmq"] = "unhealthy: connection closed"
		} else {
			deps["rabbitmq"] = "healthy"
		}
	} else {
		deps["rabbitmq"] = "not configured"
	}

	if h.MailConfigured {
		deps["smtp"] = "configured"
	} else {
		deps["smtp"] = "unhealthy: MAIL_HOST, MAIL_FROM or MAIL_TO missing"
	}

	status := "healthy"
	for _, v := range deps {
		if len(v) >= 9 && v[:9] == "unhealthy" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status == "degraded" {
		code = http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:       status,
		Version:      h.Version,
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	})
}
