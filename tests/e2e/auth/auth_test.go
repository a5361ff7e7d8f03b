//go:build e2e

package auth_test

import (
	"net/http"
	"testing"
	"time"

	"shelter-scheduler/internal/domain/user"
	"shelter-scheduler/internal/handler/dto/request"
	resdto "shelter-scheduler/internal/handler/dto/response"
	"shelter-scheduler/tests/common/authtest"
	"shelter-scheduler/tests/common/dbtest"
	"shelter-scheduler/tests/common/httptest"
	"shelter-scheduler/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	t := s.T()
	dbtest.CreateTestUser(t, s.DB, "admin@example.com", user.RoleAdmin)
	dbtest.CreateTestUser(t, s.DB, "mika@example.com", user.RoleVerifiedVolunteer)
	dbtest.CreateTestUser(t, s.DB, "keeper@example.com", user.RoleCaregiver)
	inactive := dbtest.CreateTestUser(t, s.DB, "inactive@example.com", user.RoleVerifiedVolunteer)
	dbtest.DeactivateUser(t, s.DB, inactive)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "mika@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "mika@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusForbidden},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "mika@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var res resdto.LoginResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			require.NotEmpty(t, res.AccessToken)
			require.Equal(t, int(user.RoleVerifiedVolunteer), res.Role)

			var lastLogin *time.Time
			err := s.DB.QueryRow(t.Context(), "SELECT last_login_at FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
			require.NoError(t, err)
			require.NotNil(t, lastLogin, "last_login_at was not updated")
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		token          func() string
		expectedStatus int
	}{
		{
			name:           "valid token",
			token:          func() string { return authtest.LoginUser(s.T(), s.Router, "mika@example.com", dbtest.TestPassword) },
			expectedStatus: http.StatusNoContent,
		},
		{name: "invalid token", token: func() string { return "invalid-token" }, expectedStatus: http.StatusUnauthorized},
		{name: "no token", token: func() string { return "" }, expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, tt.token())
			require.Equal(s.T(), tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name     string
		email    string
		role     user.Role
		roleName string
	}{
		{name: "admin", email: "admin@example.com", role: user.RoleAdmin, roleName: "ADMIN"},
		{name: "caregiver", email: "keeper@example.com", role: user.RoleCaregiver, roleName: "CAREGIVER"},
		{name: "verified volunteer", email: "mika@example.com", role: user.RoleVerifiedVolunteer, roleName: "VERIFIED_VOLUNTEER"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			token := authtest.LoginUser(t, s.Router, tt.email, dbtest.TestPassword)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			var res resdto.UserResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
			require.Equal(t, tt.email, res.Email)
			require.Equal(t, int(tt.role), res.Role)
			require.Equal(t, tt.roleName, res.RoleName)
			require.NotContains(t, w.Body.String(), "password")
		})
	}

	s.Run("deactivated after login", func() {
		t := s.T()
		id, token := authtest.CreateAndLogin(t, s.DB, s.Router, "late@example.com", user.RoleVerifiedVolunteer)
		dbtest.DeactivateUser(t, s.DB, id)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *authSuite) TestTokenRejection() {
	s.Run("expired token", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expiry@example.com", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.jwt.CreateExpiredToken(t, id, user.RoleAdmin))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("token signed with another secret", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "foreign@example.com", user.RoleAdmin)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.jwt.CreateForeignToken(t, id, user.RoleAdmin))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("generated token is accepted", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "direct@example.com", user.RoleCaregiver)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, s.jwt.GenerateToken(t, id, user.RoleCaregiver))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous calls", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/slots"},
			{http.MethodPost, "/api/slots"},
			{http.MethodPost, "/api/reservations"},
			{http.MethodGet, "/api/reservations/overview"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, endpoint.path)
		}
	})
}
