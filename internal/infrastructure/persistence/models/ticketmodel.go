package models

// TicketModel represents the ticket database table structure.
// Reporter, assignee, category and priority references carry RESTRICT
// constraints so referenced rows cannot be deleted while tickets point
// at them.
type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	Status      string `gorm:"size:20;not null;index"`
	CategoryID  uint   `gorm:"not null;index"`
	PriorityID  uint   `gorm:"not null;index"`
	ReporterID  uint   `gorm:"not null;index"`
	AssigneeID  *uint  `gorm:"index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli"`
	AssignedAt  *int64

	Category CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
	Priority PriorityModel `gorm:"foreignKey:PriorityID;constraint:OnDelete:RESTRICT"`
	Reporter UserModel     `gorm:"foreignKey:ReporterID;constraint:OnDelete:RESTRICT"`
	Assignee *UserModel    `gorm:"foreignKey:AssigneeID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for TicketModel
func (TicketModel) TableName() string {
	return "tickets"
}

// StatusHistoryModel represents one immutable ticket status transition.
// FromStatus is NULL only for the record written when the ticket is
// created. Rows follow the ticket on delete.
type StatusHistoryModel struct {
	ID          uint    `gorm:"primaryKey"`
	TicketID    uint    `gorm:"not null;index"`
	FromStatus  *string `gorm:"size:20"`
	ToStatus    string  `gorm:"size:20;not null"`
	ChangedByID uint    `gorm:"not null;index"`
	ChangedAt   int64   `gorm:"not null;index"`

	Ticket    TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	ChangedBy UserModel   `gorm:"foreignKey:ChangedByID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for StatusHistoryModel
func (StatusHistoryModel) TableName() string {
	return "ticket_status_histories"
}

// CommentModel represents the ticket comment database table structure
type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	AuthorID  uint   `gorm:"not null;index"`
	Body      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`

	Ticket TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	Author UserModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for CommentModel
func (CommentModel) TableName() string {
	return "ticket_comments"
}

// AttachmentModel represents the ticket attachment database table structure
type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	TicketID     uint   `gorm:"not null;index"`
	UploadedByID uint   `gorm:"not null;index"`
	FileName     string `gorm:"size:255;not null"`
	ContentType  string `gorm:"size:100;not null"`
	Size         int64  `gorm:"not null"`
	Data         []byte `gorm:"type:longblob"`
	UploadedAt   int64  `gorm:"autoCreateTime:milli"`

	Ticket     TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
	UploadedBy UserModel   `gorm:"foreignKey:UploadedByID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for AttachmentModel
func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
