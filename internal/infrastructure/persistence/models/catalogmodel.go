package models

// CategoryModel represents the ticket category database table structure
type CategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;uniqueIndex"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

// TableName specifies the table name for CategoryModel
func (CategoryModel) TableName() string {
	return "categories"
}

// PriorityModel represents the ticket priority database table structure
type PriorityModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:50;not null;uniqueIndex"`
	Rank      int    `gorm:"not null;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

// TableName specifies the table name for PriorityModel
func (PriorityModel) TableName() string {
	return "priorities"
}
