package services_test

import (
	"testing"

	"nextignition_backend/internal/email"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/internal/testutil"
	"nextignition_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInviteService_Lifecycle(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "Olga", models.UserRoleFounder, "pw")
	second := testutil.CreateUser(t, f.db, "Sean", models.UserRoleExpert, "pw")
	invitee := testutil.CreateUser(t, f.db, "Ivan", models.UserRoleInvestor, "pw")

	community, err := f.svc.InviteService.CreateCommunity(f.db, subjectOf(owner), &dto.CreateCommunityRequest{Name: "Climate founders"})
	require.NoError(t, err)

	_, err = f.svc.InviteService.CreateCommunity(f.db, subjectOf(second), &dto.CreateCommunityRequest{Name: "Climate founders"})
	assert.ErrorIs(t, err, apperrors.ErrCommunityNameTaken)

	invite, err := f.svc.InviteService.CreateInvite(f.db, subjectOf(owner), community.ID, &dto.CreateInviteRequest{InviteeID: invitee.ID})
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusPending, invite.Status)
	assert.Equal(t, "Climate founders", invite.CommunityName)

	f.svc.Notifier.Wait()
	sent := f.mail.Sent()
	require.Len(t, sent, 1)
	assert.Equal(t, email.TemplateCommunityInvite, sent[0].Template)
	assert.Equal(t, []string{invitee.Email}, sent[0].To)

	// второй pending инвайт в то же сообщество, даже от другого человека
	_, err = f.svc.InviteService.CreateInvite(f.db, subjectOf(second), community.ID, &dto.CreateInviteRequest{InviteeID: invitee.ID})
	assert.ErrorIs(t, err, apperrors.ErrInviteAlreadyPending)

	mine, err := f.svc.InviteService.ListMyInvites(f.db, subjectOf(invitee))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, invite.ID, mine[0].ID)

	// отменить может только пригласивший
	_, err = f.svc.InviteService.CancelInvite(f.db, subjectOf(invitee), invite.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	// ответить может только приглашенный
	_, err = f.svc.InviteService.RespondInvite(f.db, subjectOf(owner), invite.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientPermissions)

	declined, err := f.svc.InviteService.RespondInvite(f.db, subjectOf(invitee), invite.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusDeclined, declined.Status)

	_, err = f.svc.InviteService.RespondInvite(f.db, subjectOf(invitee), invite.ID, true)
	assert.ErrorIs(t, err, apperrors.ErrInviteNotPending)

	// после терминального статуса другой инвайтер может пригласить снова
	again, err := f.svc.InviteService.CreateInvite(f.db, subjectOf(second), community.ID, &dto.CreateInviteRequest{InviteeID: invitee.ID})
	require.NoError(t, err)

	// а тот же инвайтер - нет
	_, err = f.svc.InviteService.CreateInvite(f.db, subjectOf(owner), community.ID, &dto.CreateInviteRequest{InviteeID: invitee.ID})
	assert.ErrorIs(t, err, apperrors.ErrInviteAlreadySent)

	cancelled, err := f.svc.InviteService.CancelInvite(f.db, subjectOf(second), again.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InviteStatusCancelled, cancelled.Status)

	mine, err = f.svc.InviteService.ListMyInvites(f.db, subjectOf(invitee))
	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestInviteService_CreateInviteRejections(t *testing.T) {
	f := newFixture(t)
	owner := testutil.CreateUser(t, f.db, "Olga", models.UserRoleFounder, "pw")
	community, err := f.svc.InviteService.CreateCommunity(f.db, subjectOf(owner), &dto.CreateCommunityRequest{Name: "Solo"})
	require.NoError(t, err)

	_, err = f.svc.InviteService.CreateInvite(f.db, subjectOf(owner), community.ID, &dto.CreateInviteRequest{InviteeID: owner.ID})
	assert.ErrorIs(t, err, apperrors.ErrCannotInviteSelf)

	_, err = f.svc.InviteService.CreateInvite(f.db, subjectOf(owner), community.ID, &dto.CreateInviteRequest{InviteeID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	invitee := testutil.CreateUser(t, f.db, "Ivan", models.UserRoleInvestor, "pw")
	_, err = f.svc.InviteService.CreateInvite(f.db, subjectOf(owner), "00000000-0000-0000-0000-000000000000", &dto.CreateInviteRequest{InviteeID: invitee.ID})
	assert.ErrorIs(t, err, apperrors.ErrCommunityNotFound)

	_, err = f.svc.InviteService.RespondInvite(f.db, subjectOf(invitee), "00000000-0000-0000-0000-000000000000", true)
	assert.ErrorIs(t, err, apperrors.ErrInviteNotFound)
}
