// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"taskboard/internal/usecase"

	"go.uber.org/zap"
)

// TokenIssuer signs a bearer token for a username.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// Handler serves the REST API using service layer interfaces.
type Handler struct {
	log    *zap.SugaredLogger
	uc     usecase.InterfaceUsecase
	tokens TokenIssuer
}

// NewHandler constructs an HTTP server with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase, tokens TokenIssuer) *Handler {
	return &Handler{
		log:    log,
		uc:     usecase,
		tokens: tokens,
	}
}
