package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/handlers"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/middleware"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/validator"
	"nextignition_backend/pkg/apperrors"
	"nextignition_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "handlers-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard)
}

type env struct {
	router *gin.Engine
	tokens *auth.TokenManager
	db     *gorm.DB

	auth     *mockAuthService
	profile  *mockProfileService
	avatar   *mockAvatarService
	follow   *mockFollowService
	booking  *mockBookingService
	matching *mockMatchingService
	startup  *mockStartupService
	invite   *mockInviteService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		tokens:   auth.NewTokenManager(testSecret, time.Hour, "nextignition-test"),
		db:       &gorm.DB{},
		auth:     &mockAuthService{},
		profile:  &mockProfileService{},
		avatar:   &mockAvatarService{},
		follow:   &mockFollowService{},
		booking:  &mockBookingService{},
		matching: &mockMatchingService{},
		startup:  &mockStartupService{},
		invite:   &mockInviteService{},
	}

	container := &services.ServiceContainer{
		AuthService:     e.auth,
		ProfileService:  e.profile,
		AvatarService:   e.avatar,
		BookingService:  e.booking,
		FollowService:   e.follow,
		MatchingService: e.matching,
		StartupService:  e.startup,
		InviteService:   e.invite,
	}
	appHandlers := handlers.NewAppHandlers(container, validator.New(), nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		// сервисы замоканы, в контекст кладем пустой *gorm.DB
		c.Set(string(contextkeys.DBContextKey), e.db)
		c.Next()
	})
	api := router.Group("/api/v1")
	for _, r := range appHandlers.Registrars() {
		r.RegisterRoutes(api, middleware.AuthMiddleware(e.tokens))
	}
	e.router = router

	t.Cleanup(func() {
		for _, m := range []interface{ AssertExpectations(mock.TestingT) bool }{
			e.auth, e.profile, e.avatar, e.follow, e.booking, e.matching, e.startup, e.invite,
		} {
			m.AssertExpectations(t)
		}
	})
	return e
}

func (e *env) token(t *testing.T, subject auth.Subject) string {
	t.Helper()
	token, err := e.tokens.GenerateToken(subject.UserID, subject.Role)
	require.NoError(t, err)
	return token
}

func (e *env) do(t *testing.T, method, path string, body interface{}, subject *auth.Subject) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if subject != nil {
		req.Header.Set("Authorization", "Bearer "+e.token(t, *subject))
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func founder() *auth.Subject {
	return &auth.Subject{UserID: "11111111-1111-1111-1111-111111111111", Role: models.UserRoleFounder}
}

func expert() *auth.Subject {
	return &auth.Subject{UserID: "22222222-2222-2222-2222-222222222222", Role: models.UserRoleExpert}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorResponse {
	t.Helper()
	var resp apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

