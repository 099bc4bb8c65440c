package model

import "time"

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(254);uniqueIndex;not null"`
	Username     string `gorm:"type:varchar(150);uniqueIndex;not null"`
	FirstName    string `gorm:"type:varchar(150);not null"`
	LastName     string `gorm:"type:varchar(150);not null"`
	PasswordHash string `gorm:"type:varchar(128);not null"`
	Role         string `gorm:"type:varchar(16);not null;default:user"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FollowModel mirrors the 'follows' table. (user_id, author_id) is unique.
type FollowModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	UserID    int64 `gorm:"not null;uniqueIndex:uq_follows_user_author"`
	AuthorID  int64 `gorm:"not null;uniqueIndex:uq_follows_user_author;index"`
	CreatedAt time.Time

	Author *UserModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (FollowModel) TableName() string {
	return "follows"
}
