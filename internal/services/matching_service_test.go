package services_test

import (
	"fmt"
	"testing"

	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/testutil"
	"nextignition_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingService_MatchExperts(t *testing.T) {
	f := newFixture(t)
	founder := testutil.CreateUser(t, f.db, "Fay", models.UserRoleFounder, "pw")
	startup := testutil.CreateStartup(t, f.db, founder.ID, "FinTech")

	byExpertise := testutil.CreateUser(t, f.db, "Exa", models.UserRoleExpert, "pw")
	require.NoError(t, f.db.Model(byExpertise).Update("profile_expertise", "FinTech").Error)

	bySkill := testutil.CreateUser(t, f.db, "Sky", models.UserRoleExpert, "pw")
	testutil.AddSkills(t, f.db, bySkill, "Payments", "FinTech")

	// не эксперт, хотя экспертиза совпадает
	notExpert := testutil.CreateUser(t, f.db, "Ivy", models.UserRoleInvestor, "pw")
	require.NoError(t, f.db.Model(notExpert).Update("profile_expertise", "FinTech").Error)

	// подстрока и другой регистр не считаются совпадением
	near := testutil.CreateUser(t, f.db, "Nia", models.UserRoleExpert, "pw")
	testutil.AddSkills(t, f.db, near, "fintech", "FinTech Ops")

	matches, err := f.svc.MatchingService.MatchExperts(f.db, startup.ID)
	require.NoError(t, err)

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		assert.Equal(t, models.UserRoleExpert, m.Role)
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{byExpertise.ID, bySkill.ID}, ids)
}

func TestMatchingService_CapsAtTen(t *testing.T) {
	f := newFixture(t)
	founder := testutil.CreateUser(t, f.db, "Fay", models.UserRoleFounder, "pw")
	startup := testutil.CreateStartup(t, f.db, founder.ID, "HealthTech")

	for i := 0; i < services.MatchExpertsLimit+5; i++ {
		u := testutil.CreateUser(t, f.db, fmt.Sprintf("Expert %d", i), models.UserRoleExpert, "pw")
		testutil.AddSkills(t, f.db, u, "HealthTech")
	}

	matches, err := f.svc.MatchingService.MatchExperts(f.db, startup.ID)
	require.NoError(t, err)
	assert.Len(t, matches, services.MatchExpertsLimit)
}

func TestMatchingService_StartupNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.MatchingService.MatchExperts(f.db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrStartupNotFound)

	_, err = f.svc.MatchingService.MatchExperts(f.db, "nope")
	assert.ErrorIs(t, err, apperrors.ErrStartupNotFound)
}
