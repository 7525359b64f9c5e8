package repositories_test

import (
	"fmt"
	"testing"
	"time"

	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(users []models.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Name)
	}
	return out
}

func TestUserRepository_CreateRejectsDuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()

	first := &models.User{Name: "Ann", Email: "ann@test.com", PasswordHash: "x", Role: models.UserRoleFounder}
	require.NoError(t, repo.Create(db, first))
	assert.NotEmpty(t, first.ID)

	second := &models.User{Name: "Ann 2", Email: "ann@test.com", PasswordHash: "y", Role: models.UserRoleExpert}
	assert.ErrorIs(t, repo.Create(db, second), repositories.ErrUserAlreadyExists)
}

func TestUserRepository_FindByIDNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()

	_, err := repo.FindByID(db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestUserRepository_UpdateProfileReplacesSkills(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()
	user := testutil.CreateUser(t, db, "Eve", models.UserRoleExpert, "pw123456")
	testutil.AddSkills(t, db, user, "Go", "SQL")

	user.Profile.Bio = "Payments"
	user.Profile.Socials = map[string]interface{}{"website": "https://eve.dev"}
	user.Skills = []models.UserSkill{{Skill: "Fintech"}, {Skill: "Go"}}
	require.NoError(t, repo.UpdateProfile(db, user, true))

	stored, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Payments", stored.Profile.Bio)
	assert.Equal(t, "https://eve.dev", stored.Profile.Socials["website"])
	assert.Equal(t, []string{"Fintech", "Go"}, stored.SkillNames())
}

func TestUserRepository_UpdateProfileKeepsSkills(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()
	user := testutil.CreateUser(t, db, "Eve", models.UserRoleExpert, "pw123456")
	testutil.AddSkills(t, db, user, "Go")

	user.Profile.Location = "Berlin"
	user.Skills = nil
	require.NoError(t, repo.UpdateProfile(db, user, false))

	stored, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", stored.Profile.Location)
	assert.Equal(t, []string{"Go"}, stored.SkillNames())
}

func TestUserRepository_Search(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()

	alice := testutil.CreateUser(t, db, "Alice Fintech", models.UserRoleFounder, "pw123456")
	bob := testutil.CreateUser(t, db, "Bob", models.UserRoleExpert, "pw123456")
	testutil.AddSkills(t, db, bob, "FINTECH")
	carol := testutil.CreateUser(t, db, "Carol", models.UserRoleInvestor, "pw123456")
	require.NoError(t, db.Model(carol).Update("profile_bio", "Angel in fintech").Error)
	testutil.CreateUser(t, db, "Dave", models.UserRoleExpert, "pw123456")
	_ = alice

	t.Run("matches name, bio and skills case-insensitively", func(t *testing.T) {
		users, err := repo.Search(db, repositories.UserSearch{Query: "fInTeCh", Limit: 20})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Alice Fintech", "Bob", "Carol"}, names(users))
	})

	t.Run("role filter", func(t *testing.T) {
		users, err := repo.Search(db, repositories.UserSearch{Query: "fintech", Role: models.UserRoleExpert, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, []string{"Bob"}, names(users))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		users, err := repo.Search(db, repositories.UserSearch{Query: "%", Limit: 20})
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("empty query returns everyone up to limit", func(t *testing.T) {
		users, err := repo.Search(db, repositories.UserSearch{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserRepository_SearchFoldsNonASCII(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()

	testutil.CreateUser(t, db, "Ärzte Beratung", models.UserRoleExpert, "pw123456")
	testutil.CreateUser(t, db, "Bob", models.UserRoleExpert, "pw123456")

	for _, q := range []string{"ärzte", "ÄRZTE", "beRATung"} {
		users, err := repo.Search(db, repositories.UserSearch{Query: q, Limit: 20})
		require.NoError(t, err)
		assert.Equal(t, []string{"Ärzte Beratung"}, names(users), "query %q", q)
	}
}

func TestUserRepository_FindByRoleLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()
	for i := 0; i < 3; i++ {
		testutil.CreateUser(t, db, fmt.Sprintf("Founder %d", i), models.UserRoleFounder, "pw123456")
	}
	testutil.CreateUser(t, db, "Expert", models.UserRoleExpert, "pw123456")

	founders, err := repo.FindByRole(db, models.UserRoleFounder, 50)
	require.NoError(t, err)
	assert.Len(t, founders, 3)

	all, err := repo.FindByRole(db, "", 2)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUserRepository_FindExpertsByIndustry(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()

	byExpertise := testutil.CreateUser(t, db, "By Expertise", models.UserRoleExpert, "pw123456")
	require.NoError(t, db.Model(byExpertise).Update("profile_expertise", "Fintech").Error)

	bySkill := testutil.CreateUser(t, db, "By Skill", models.UserRoleExpert, "pw123456")
	testutil.AddSkills(t, db, bySkill, "Payments", "Fintech")

	founder := testutil.CreateUser(t, db, "Founder", models.UserRoleFounder, "pw123456")
	testutil.AddSkills(t, db, founder, "Fintech")

	other := testutil.CreateUser(t, db, "Other", models.UserRoleExpert, "pw123456")
	testutil.AddSkills(t, db, other, "fintech") // регистр важен

	experts, err := repo.FindExpertsByIndustry(db, "Fintech", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"By Expertise", "By Skill"}, names(experts))
}

func TestUserRepository_UpdateRolesAndBanner(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewUserRepository()
	user := testutil.CreateUser(t, db, "Multi", models.UserRoleFounder, "pw123456")

	user.GrantRole(models.UserRoleInvestor)
	user.Role = models.UserRoleInvestor
	require.NoError(t, repo.UpdateRoles(db, user))

	until := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, repo.UpdateBannerDismissal(db, user.ID, until))

	stored, err := repo.FindByID(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleInvestor, stored.Role)
	assert.ElementsMatch(t, []models.UserRole{models.UserRoleFounder, models.UserRoleInvestor}, []models.UserRole(stored.Roles))
	require.NotNil(t, stored.VerificationBannerDismissedUntil)
	assert.WithinDuration(t, until, *stored.VerificationBannerDismissedUntil, time.Second)

	assert.ErrorIs(t, repo.UpdateAvatar(db, "missing", "http://x"), repositories.ErrUserNotFound)
}
