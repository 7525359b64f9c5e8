package models

// Follow - направленное ребро "follower подписан на following".
// Пара уникальна; повторная подписка ничего не меняет.
type Follow struct {
	BaseModel
	FollowerID  string `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair"`
	FollowingID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair;index"`
}
