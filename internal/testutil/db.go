// Package testutil собирает общие хелперы тестов: in-memory БД и фикстуры.
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"nextignition_backend/internal/config"
	"nextignition_backend/internal/database"
	"nextignition_backend/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var seq atomic.Int64

// NewTestDB открывает изолированную in-memory sqlite с мигрированной схемой.
// Одно соединение: каждая новая связь с ":memory:" видела бы пустую базу.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, config.EnvTest)
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// UniqueEmail - уникальный email в пределах прогона
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s_%d@test.com", prefix, seq.Add(1))
}

// CreateUser сохраняет пользователя с ролью role; пароль хешируется с MinCost
func CreateUser(t *testing.T, db *gorm.DB, name string, role models.UserRole, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         name,
		Email:        UniqueEmail(string(role)),
		PasswordHash: string(hash),
		Role:         role,
		Roles:        datatypes.NewJSONSlice([]models.UserRole{role}),
	}
	require.NoError(t, db.Create(user).Error, "failed to create user %s", name)
	return user
}

// AddSkills дописывает навыки пользователю
func AddSkills(t *testing.T, db *gorm.DB, user *models.User, skills ...string) {
	t.Helper()
	for i, s := range skills {
		skill := models.UserSkill{UserID: user.ID, Skill: s, Position: len(user.Skills) + i}
		require.NoError(t, db.Create(&skill).Error)
		user.Skills = append(user.Skills, skill)
	}
}

// CreateStartup сохраняет стартап в индустрии industry
func CreateStartup(t *testing.T, db *gorm.DB, founderID, industry string) *models.Startup {
	t.Helper()
	startup := &models.Startup{
		Name:      "Startup " + industry,
		Industry:  industry,
		FounderID: founderID,
	}
	require.NoError(t, db.Create(startup).Error)
	return startup
}
