package db

import "time"

// NavigationItem is a menu entry pointing at a Page by slug.
// The slug reference is checked when the item is created but is not a
// foreign key: deleting or renaming a page does not touch its items.
type NavigationItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Label      string    `gorm:"not null" json:"label"`
	Slug       string    `gorm:"not null" json:"slug"`
	OrderIndex int       `gorm:"not null" json:"order_index"`
	IsVisible  bool      `gorm:"not null" json:"is_visible"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
