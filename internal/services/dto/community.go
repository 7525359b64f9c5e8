package dto

import (
	"time"

	"nextignition_backend/internal/models"
)

type CreateCommunityRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

type CreateInviteRequest struct {
	InviteeID string `json:"inviteeId" validate:"required,uuid"`
}

type CommunityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type InviteResponse struct {
	ID            string              `json:"id"`
	CommunityID   string              `json:"communityId"`
	CommunityName string              `json:"communityName,omitempty"`
	InviterID     string              `json:"inviterId"`
	InviteeID     string              `json:"inviteeId"`
	Status        models.InviteStatus `json:"status"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

func NewCommunityResponse(c *models.Community) *CommunityResponse {
	return &CommunityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
	}
}

func NewInviteResponse(inv *models.CommunityInvite) *InviteResponse {
	resp := &InviteResponse{
		ID:          inv.ID,
		CommunityID: inv.CommunityID,
		InviterID:   inv.InviterID,
		InviteeID:   inv.InviteeID,
		Status:      inv.Status,
		CreatedAt:   inv.CreatedAt,
		UpdatedAt:   inv.UpdatedAt,
	}
	if inv.Community != nil {
		resp.CommunityName = inv.Community.Name
	}
	return resp
}

func NewInviteList(invites []models.CommunityInvite) []*InviteResponse {
	out := make([]*InviteResponse, 0, len(invites))
	for i := range invites {
		out = append(out, NewInviteResponse(&invites[i]))
	}
	return out
}
