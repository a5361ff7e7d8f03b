//go:build unit || e2e

package builder

import (
	reqdto "shelter-scheduler/internal/handler/dto/request"
	"shelter-scheduler/tests/common/dbtest"
)

// AuthBuilder assembles login payloads for the seeded test password.
type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "mika.volunteer@shelter.test",
		Password: dbtest.TestPassword,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) WithPassword(pw string) *AuthBuilder {
	a.Password = pw
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{Email: a.Email, Password: a.Password}
}

// BuildMap is the JSON shape of the login body, for tests that need to mutate fields.
func (a *AuthBuilder) BuildMap() map[string]any {
	return map[string]any{"email": a.Email, "password": a.Password}
}
