package services

import (
	"context"
	"time"

	"github.com/debugger-rana/library-management-system/internal/core/domain"
)

// TokenSvcFacade defines the interface for access token management.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT for user carrying its role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
