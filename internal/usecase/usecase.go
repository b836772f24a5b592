// Package usecase exposes the application services consumed by the transport layer.
package usecase

import (
	"time"

	"taskboard/internal/repository"
	"taskboard/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	UserUsecaseInterface
	ProjectUsecaseInterface
	TaskUsecaseInterface
	HealthUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, repo, timeout)
}
