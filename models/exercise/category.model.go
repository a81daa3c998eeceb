package exercise

import "gorm.io/gorm"

// Category is a named grouping of exercises (e.g. Grammar, Vocabulary)
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // canonical display order
	IsDeleted   bool   `gorm:"default:false"`
}

// DownloadableFile holds metadata for study material attached to a category.
// The binary itself lives in external storage under StorageKey.
type DownloadableFile struct {
	gorm.Model
	CategoryID  uint   `json:"category_id" gorm:"index;not null"`
	FileName    string `json:"file_name"`
	StorageKey  string `json:"storage_key" gorm:"uniqueIndex"`
	SizeBytes   int64  `json:"size_bytes" gorm:"default:0"`
	ContentType string `json:"content_type"`
	IsDeleted   bool   `gorm:"default:false"`
}
