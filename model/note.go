package model

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Note struct {
	ID string `gorm:"primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`
	// Course, Professor and Semester are always the canonical forms
	// produced by the validators package, never raw user input
	Course      string `gorm:"not null;index" json:"course"`
	Professor   string `gorm:"not null" json:"professor"`
	Semester    string `gorm:"not null" json:"semester"`
	Description string `json:"description"`

	// Since different users may upload files with the same name we keep
	// the S3 objects under a generated key
	FileKey  string `gorm:"not null" json:"fileKey"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`

	Status     string  `gorm:"default:pending;not null;index" json:"status"`
	UploadedBy string  `gorm:"not null;index" json:"uploadedBy"`
	ApprovedBy *string `json:"approvedBy"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
