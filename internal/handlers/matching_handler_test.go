package handlers_test

import (
	"net/http"
	"testing"

	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMatchingHandler_MatchExperts(t *testing.T) {
	t.Run("public", func(t *testing.T) {
		e := newEnv(t)
		e.matching.On("MatchExperts", e.db, "s1").Return([]*dto.UserResponse{{ID: "e1"}}, nil)

		w := e.do(t, http.MethodGet, "/api/v1/startups/s1/matches", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]dto.UserResponse](t, w), 1)
	})

	t.Run("unknown startup", func(t *testing.T) {
		e := newEnv(t)
		e.matching.On("MatchExperts", e.db, "nope").Return(nil, apperrors.ErrStartupNotFound)

		w := e.do(t, http.MethodGet, "/api/v1/startups/nope/matches", nil, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Startup not found", decodeError(t, w).Message)
	})
}

func TestMatchingHandler_Startups(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		e := newEnv(t)
		subject := founder()
		e.startup.On("CreateStartup", e.db, *subject, mock.MatchedBy(func(r *dto.CreateStartupRequest) bool {
			return r.Name == "Rocket"
		})).Return(&dto.StartupResponse{ID: "s1", Name: "Rocket"}, nil)

		w := e.do(t, http.MethodPost, "/api/v1/startups", map[string]string{"name": "Rocket", "industry": "fintech"}, subject)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create requires auth", func(t *testing.T) {
		e := newEnv(t)
		w := e.do(t, http.MethodPost, "/api/v1/startups", map[string]string{"name": "Rocket"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		e := newEnv(t)
		e.startup.On("GetStartup", e.db, "s1").Return(&dto.StartupResponse{ID: "s1", Name: "Rocket"}, nil)

		w := e.do(t, http.MethodGet, "/api/v1/startups/s1", nil, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Rocket", decode[dto.StartupResponse](t, w).Name)
	})
}
