package models

// UserModel represents the user database table structure
type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"size:150;not null;uniqueIndex"`
	Email        string  `gorm:"size:254;not null;uniqueIndex"`
	PasswordHash string  `gorm:"size:255;not null"`
	IsStaff      bool    `gorm:"not null;default:false"`
	IsSuperuser  bool    `gorm:"not null;default:false"`
	Role         *string `gorm:"size:20;index"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli"`
}

// TableName specifies the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}
