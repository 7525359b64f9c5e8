package models

type Community struct {
	BaseModel
	Name        string `gorm:"size:120;not null;uniqueIndex" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	OwnerID     string `gorm:"type:varchar(36);not null;index" json:"ownerId"`
}

// CommunityInvite: один инвайтер приглашает пользователя в сообщество не больше одного раза,
// и у пользователя не может быть двух ожидающих инвайтов в одно сообщество
type CommunityInvite struct {
	BaseModel
	CommunityID string       `gorm:"type:varchar(36);not null;uniqueIndex:idx_invite_triple,priority:1;index:idx_invite_pending,unique,where:status = 'pending',priority:1" json:"communityId"`
	InviteeID   string       `gorm:"type:varchar(36);not null;uniqueIndex:idx_invite_triple,priority:2;index:idx_invite_pending,unique,where:status = 'pending',priority:2" json:"inviteeId"`
	InviterID   string       `gorm:"type:varchar(36);not null;uniqueIndex:idx_invite_triple,priority:3" json:"inviterId"`
	Status      InviteStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Relations
	Community *Community `gorm:"foreignKey:CommunityID" json:"community,omitempty"`
}
