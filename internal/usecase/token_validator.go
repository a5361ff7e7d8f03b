package usecase

import (
	"shelter-scheduler/internal/domain/user"
	"shelter-scheduler/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (int64, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (int64, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, user.RoleUnauthorized, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, user.RoleUnauthorized, err
	}

	return claims.UserID, role, nil
}
