package repositories_test

import (
	"testing"

	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityRepository_InviteUniqueness(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewCommunityRepository()
	owner := testutil.CreateUser(t, db, "Owner", models.UserRoleFounder, "pw123456")
	helper := testutil.CreateUser(t, db, "Helper", models.UserRoleFounder, "pw123456")
	invitee := testutil.CreateUser(t, db, "Invitee", models.UserRoleExpert, "pw123456")

	community := &models.Community{Name: "Fintech Founders", OwnerID: owner.ID}
	require.NoError(t, repo.CreateCommunity(db, community))
	assert.ErrorIs(t,
		repo.CreateCommunity(db, &models.Community{Name: "Fintech Founders", OwnerID: helper.ID}),
		repositories.ErrCommunityNameTaken)

	first := &models.CommunityInvite{CommunityID: community.ID, InviterID: owner.ID, InviteeID: invitee.ID}
	require.NoError(t, repo.CreateInvite(db, first))
	assert.Equal(t, models.InviteStatusPending, first.Status)

	// второй ожидающий инвайт от другого инвайтера запрещен
	err := repo.CreateInvite(db, &models.CommunityInvite{CommunityID: community.ID, InviterID: helper.ID, InviteeID: invitee.ID})
	assert.ErrorIs(t, err, repositories.ErrInviteAlreadyPending)

	require.NoError(t, repo.UpdateInviteStatus(db, first.ID, models.InviteStatusPending, models.InviteStatusDeclined))

	// после отказа другой инвайтер может пригласить снова
	require.NoError(t, repo.CreateInvite(db, &models.CommunityInvite{CommunityID: community.ID, InviterID: helper.ID, InviteeID: invitee.ID}))

	// тот же инвайтер повторно - нет, даже если прошлый инвайт закрыт
	err = repo.CreateInvite(db, &models.CommunityInvite{CommunityID: community.ID, InviterID: owner.ID, InviteeID: invitee.ID})
	assert.ErrorIs(t, err, repositories.ErrInviteAlreadySent)

	pending, err := repo.FindPendingInvitesForUser(db, invitee.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, helper.ID, pending[0].InviterID)
	require.NotNil(t, pending[0].Community)
	assert.Equal(t, "Fintech Founders", pending[0].Community.Name)
}

func TestCommunityRepository_PartialIndexGuardsPending(t *testing.T) {
	db := testutil.NewTestDB(t)
	owner := testutil.CreateUser(t, db, "Owner", models.UserRoleFounder, "pw123456")
	helper := testutil.CreateUser(t, db, "Helper", models.UserRoleFounder, "pw123456")
	invitee := testutil.CreateUser(t, db, "Invitee", models.UserRoleExpert, "pw123456")

	community := &models.Community{Name: "Guarded", OwnerID: owner.ID}
	require.NoError(t, db.Create(community).Error)
	require.NoError(t, db.Create(&models.CommunityInvite{CommunityID: community.ID, InviterID: owner.ID, InviteeID: invitee.ID, Status: models.InviteStatusPending}).Error)

	// минуя проверки репозитория, упираемся в индекс
	err := db.Create(&models.CommunityInvite{CommunityID: community.ID, InviterID: helper.ID, InviteeID: invitee.ID, Status: models.InviteStatusPending}).Error
	assert.Error(t, err)
}

func TestCommunityRepository_UpdateInviteStatusIsConditional(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewCommunityRepository()
	owner := testutil.CreateUser(t, db, "Owner", models.UserRoleFounder, "pw123456")
	invitee := testutil.CreateUser(t, db, "Invitee", models.UserRoleExpert, "pw123456")

	community := &models.Community{Name: "Conditional", OwnerID: owner.ID}
	require.NoError(t, repo.CreateCommunity(db, community))
	invite := &models.CommunityInvite{CommunityID: community.ID, InviterID: owner.ID, InviteeID: invitee.ID}
	require.NoError(t, repo.CreateInvite(db, invite))

	require.NoError(t, repo.UpdateInviteStatus(db, invite.ID, models.InviteStatusPending, models.InviteStatusAccepted))
	err := repo.UpdateInviteStatus(db, invite.ID, models.InviteStatusPending, models.InviteStatusCancelled)
	assert.ErrorIs(t, err, repositories.ErrInviteStatusChanged)

	_, err = repo.FindInviteByID(db, "missing")
	assert.ErrorIs(t, err, repositories.ErrInviteNotFound)
}
