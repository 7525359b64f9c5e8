package models

// Booking - сессия менторства между фаундером и экспертом.
// Date хранится как YYYY-MM-DD, StartTime как HH:MM: строки сортируются так же, как даты.
type Booking struct {
	BaseModel
	FounderID string        `gorm:"type:varchar(36);not null;index" json:"founderId"`
	ExpertID  string        `gorm:"type:varchar(36);not null;index" json:"expertId"`
	Date      string        `gorm:"type:varchar(10);not null;index" json:"date"`
	StartTime string        `gorm:"type:varchar(5);not null" json:"startTime"`
	Duration  int           `gorm:"not null" json:"duration"`
	Topic     string        `gorm:"size:200" json:"topic"`
	Notes     string        `gorm:"type:text" json:"notes"`
	Status    BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Relations
	Founder *User `gorm:"foreignKey:FounderID" json:"-"`
	Expert  *User `gorm:"foreignKey:ExpertID" json:"-"`
}

// IsParty - участвует ли пользователь в брони
func (b *Booking) IsParty(userID string) bool {
	return b.FounderID == userID || b.ExpertID == userID
}
