package model

import "time"

// ToolModel mirrors the 'tools' table.
type ToolModel struct {
	ID          int        `gorm:"primaryKey;autoIncrement"`
	Title       string     `gorm:"type:varchar(50);uniqueIndex;not null"`
	Link        string     `gorm:"type:varchar(50);not null"`
	Description string     `gorm:"type:varchar(2000);not null"`
	Tags        []TagModel `gorm:"foreignKey:ToolID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ToolModel) TableName() string {
	return "tools"
}

// TagModel mirrors 'tool_tags'; one row per (tool, tag) pair.
type TagModel struct {
	ToolID int    `gorm:"primaryKey"`
	Name   string `gorm:"primaryKey;type:varchar(50)"`
}

func (TagModel) TableName() string {
	return "tool_tags"
}
