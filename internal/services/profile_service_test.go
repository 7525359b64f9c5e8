package services_test

import (
	"fmt"
	"testing"
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/internal/testutil"
	"nextignition_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestProfileService_UpdateProfileIsPartial(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "Pat", models.UserRoleFounder, "pw")

	_, err := f.svc.ProfileService.UpdateProfile(f.db, subjectOf(user), &dto.ProfilePatch{
		Skills:     []string{"growth", "sales"},
		Experience: ptr("5 years"),
		Socials:    map[string]string{"linkedin": "https://linkedin.com/in/pat"},
	})
	require.NoError(t, err)

	resp, err := f.svc.ProfileService.UpdateProfile(f.db, subjectOf(user), &dto.ProfilePatch{Bio: ptr("x")})
	require.NoError(t, err)

	assert.Equal(t, "x", resp.Profile.Bio)
	assert.Equal(t, []string{"growth", "sales"}, resp.Profile.Skills)
	assert.Equal(t, "5 years", resp.Profile.Experience)
	assert.Equal(t, "https://linkedin.com/in/pat", resp.Profile.Socials["linkedin"])
}

func TestProfileService_WebsiteGoesToSocials(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "Wes", models.UserRoleFounder, "pw")

	resp, err := f.svc.ProfileService.UpdateProfile(f.db, subjectOf(user), &dto.ProfilePatch{
		Website: ptr("https://wes.dev"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"website": "https://wes.dev"}, resp.Profile.Socials)

	resp, err = f.svc.ProfileService.UpdateProfile(f.db, subjectOf(user), &dto.ProfilePatch{
		Socials: map[string]string{"x": "https://x.com/wes"},
		Website: ptr("https://wes.io"),
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "https://x.com/wes", "website": "https://wes.io"}, resp.Profile.Socials)
}

func TestProfileService_ClearSkills(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "Cy", models.UserRoleExpert, "pw")
	testutil.AddSkills(t, f.db, user, "ml", "go")

	resp, err := f.svc.ProfileService.UpdateProfile(f.db, subjectOf(user), &dto.ProfilePatch{Skills: []string{}})
	require.NoError(t, err)
	assert.Empty(t, resp.Profile.Skills)
}

func TestProfileService_GetProfile(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "Gia", models.UserRoleInvestor, "pw")

	resp, err := f.svc.ProfileService.GetProfile(f.db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, resp.Email)

	_, err = f.svc.ProfileService.GetProfile(f.db, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	_, err = f.svc.ProfileService.GetProfile(f.db, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileService_ListByRoleCapsAt50(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < services.ListByRoleLimit+3; i++ {
		testutil.CreateUser(t, f.db, fmt.Sprintf("Expert %d", i), models.UserRoleExpert, "pw")
	}
	testutil.CreateUser(t, f.db, "Founder", models.UserRoleFounder, "pw")

	experts, err := f.svc.ProfileService.ListByRole(f.db, models.UserRoleExpert)
	require.NoError(t, err)
	assert.Len(t, experts, services.ListByRoleLimit)
	for _, u := range experts {
		assert.Equal(t, models.UserRoleExpert, u.Role)
	}

	founders, err := f.svc.ProfileService.ListByRole(f.db, models.UserRoleFounder)
	require.NoError(t, err)
	assert.Len(t, founders, 1)
}

func TestProfileService_SearchUsers(t *testing.T) {
	f := newFixture(t)

	byName := testutil.CreateUser(t, f.db, "Growth Guru", models.UserRoleExpert, "pw")
	bySkill := testutil.CreateUser(t, f.db, "Kim", models.UserRoleExpert, "pw")
	testutil.AddSkills(t, f.db, bySkill, "GROWTH hacking")
	byBio := testutil.CreateUser(t, f.db, "Lou", models.UserRoleExpert, "pw")
	require.NoError(t, f.db.Model(byBio).Update("profile_bio", "I help startups grow").Error)

	founder := testutil.CreateUser(t, f.db, "Growing Founder", models.UserRoleFounder, "pw")
	testutil.CreateUser(t, f.db, "Nobody", models.UserRoleExpert, "pw")

	results, err := f.svc.ProfileService.SearchUsers(f.db, &dto.SearchUsersQuery{Q: "grow", Role: models.UserRoleExpert})
	require.NoError(t, err)

	ids := make([]string, 0, len(results))
	for _, u := range results {
		ids = append(ids, u.ID)
	}
	assert.ElementsMatch(t, []string{byName.ID, bySkill.ID, byBio.ID}, ids)
	assert.NotContains(t, ids, founder.ID)
}

func TestProfileService_DismissVerificationBanner(t *testing.T) {
	f := newFixture(t)
	user := testutil.CreateUser(t, f.db, "Ban", models.UserRoleFounder, "pw")

	before := time.Now().UTC()
	resp, err := f.svc.ProfileService.DismissVerificationBanner(f.db, subjectOf(user), 0)
	require.NoError(t, err)
	assert.WithinDuration(t, before.Add(7*24*time.Hour), resp.VerificationBannerDismissedUntil, time.Minute)

	_, err = f.svc.ProfileService.DismissVerificationBanner(f.db, subjectOf(user), 91)
	assert.Error(t, err)

	_, err = f.svc.ProfileService.DismissVerificationBanner(f.db, auth.Subject{}, 3)
	assert.ErrorIs(t, err, apperrors.ErrNotAuthenticated)
}
