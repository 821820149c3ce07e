package catalog

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxCategoryNameLength = 100

var categoryTitleCaser = cases.Title(language.English)

// Category groups tickets by topic. Names are normalized to title case so
// "network" and "Network" land on the same record.
type Category struct {
	id        uint
	name      string
	isActive  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewCategory(name string) (*Category, error) {
	normalized, err := normalizeCategoryName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Category{
		name:      normalized,
		isActive:  true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCategory(id uint, name string, isActive bool, createdAt, updatedAt time.Time) (*Category, error) {
	if id == 0 {
		return nil, fmt.Errorf("category ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("category name is required")
	}

	return &Category{
		id:        id,
		name:      name,
		isActive:  isActive,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func normalizeCategoryName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) == 0 {
		return "", fmt.Errorf("category name is required")
	}
	if len(trimmed) > maxCategoryNameLength {
		return "", fmt.Errorf("category name exceeds maximum length of %d characters", maxCategoryNameLength)
	}
	return categoryTitleCaser.String(trimmed), nil
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) IsActive() bool {
	return c.isActive
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Category) Rename(name string) error {
	normalized, err := normalizeCategoryName(name)
	if err != nil {
		return err
	}
	c.name = normalized
	c.updatedAt = time.Now()
	return nil
}

func (c *Category) Activate() {
	c.isActive = true
	c.updatedAt = time.Now()
}

func (c *Category) Deactivate() {
	c.isActive = false
	c.updatedAt = time.Now()
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}
