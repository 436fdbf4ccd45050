package models

import "time"

// Project represents a single portfolio entry
type Project struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement;not null"`
	Title       string     `json:"title" gorm:"type:text;not null"`
	TechStack   string     `json:"tech_stack" gorm:"column:tech_stack;type:text;not null"`
	Description string     `json:"description" gorm:"type:text"`
	ImageURL    string     `json:"image_url" gorm:"column:image_url;type:text"`
	CreatedAt   *time.Time `json:"created_at,omitempty" gorm:"column:created_at;autoCreateTime:false"`
	LiveLink    string     `json:"live_link" gorm:"column:live_link;type:text"`
	// The column and wire name "githup" come from the original schema and are
	// kept for compatibility with existing form templates and stored rows.
	GithubLink string `json:"githup" gorm:"column:githup;type:text"`
}
