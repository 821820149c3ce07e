package catalog

import (
	"fmt"
	"strings"
	"time"
)

const maxPriorityNameLength = 50

// Priority orders tickets by urgency. Rank is ascending, lower rank means
// more urgent.
type Priority struct {
	id        uint
	name      string
	rank      int
	createdAt time.Time
	updatedAt time.Time
}

func NewPriority(name string, rank int) (*Priority, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("priority name is required")
	}
	if len(trimmed) > maxPriorityNameLength {
		return nil, fmt.Errorf("priority name exceeds maximum length of %d characters", maxPriorityNameLength)
	}
	if rank < 0 {
		return nil, fmt.Errorf("priority rank cannot be negative")
	}

	now := time.Now()
	return &Priority{
		name:      trimmed,
		rank:      rank,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPriority(id uint, name string, rank int, createdAt, updatedAt time.Time) (*Priority, error) {
	if id == 0 {
		return nil, fmt.Errorf("priority ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("priority name is required")
	}

	return &Priority{
		id:        id,
		name:      name,
		rank:      rank,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (p *Priority) ID() uint {
	return p.id
}

func (p *Priority) Name() string {
	return p.name
}

func (p *Priority) Rank() int {
	return p.rank
}

func (p *Priority) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Priority) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Priority) Update(name string, rank int) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		return fmt.Errorf("priority name is required")
	}
	if rank < 0 {
		return fmt.Errorf("priority rank cannot be negative")
	}
	p.name = trimmed
	p.rank = rank
	p.updatedAt = time.Now()
	return nil
}

func (p *Priority) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("priority ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("priority ID cannot be zero")
	}
	p.id = id
	return nil
}
