package db

import "time"

// Page is a standalone content page such as the landing or about page.
// Rows are hard-deleted, so the model carries its own timestamp fields
// instead of embedding gorm.Model.
type Page struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Slug            string    `gorm:"uniqueIndex;not null" json:"slug"`
	Title           string    `gorm:"not null" json:"title"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	MetaDescription *string   `json:"meta_description"`
	MetaKeywords    *string   `json:"meta_keywords"`
	IsPublished     bool      `gorm:"not null" json:"is_published"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
