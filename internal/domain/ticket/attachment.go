package ticket

import (
	"fmt"
	"time"
)

const maxAttachmentSize = 10 << 20 // 10 MiB

// Attachment is a file stored inline with its ticket. Content lives in the
// database so deleting the ticket cascades to its files with no orphaned
// blobs on disk.
type Attachment struct {
	id           uint
	ticketID     uint
	uploadedByID uint
	fileName     string
	contentType  string
	size         int64
	data         []byte
	uploadedAt   time.Time
}

func NewAttachment(ticketID, uploadedByID uint, fileName, contentType string, data []byte) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploadedByID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("attachment data is empty")
	}
	if len(data) > maxAttachmentSize {
		return nil, fmt.Errorf("attachment exceeds maximum size of %d bytes", maxAttachmentSize)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &Attachment{
		ticketID:     ticketID,
		uploadedByID: uploadedByID,
		fileName:     fileName,
		contentType:  contentType,
		size:         int64(len(data)),
		data:         data,
		uploadedAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	uploadedByID uint,
	fileName string,
	contentType string,
	size int64,
	data []byte,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:           id,
		ticketID:     ticketID,
		uploadedByID: uploadedByID,
		fileName:     fileName,
		contentType:  contentType,
		size:         size,
		data:         data,
		uploadedAt:   uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploadedByID() uint {
	return a.uploadedByID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) Data() []byte {
	return a.data
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
