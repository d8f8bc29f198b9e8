package model

import "gorm.io/gorm"

// CareerApplication records a submitted job application. ResumeFile is
// the generated name of the stored PDF, never the client-supplied one.
type CareerApplication struct {
	gorm.Model
	FullName   string `gorm:"column:full_name;not null"`
	Email      string `gorm:"column:email;not null"`
	Phone      string `gorm:"column:phone"`
	ResumeFile string `gorm:"column:resume_file;not null"`
	Note       string `gorm:"column:note"`
	Reviewed   bool   `gorm:"column:reviewed;default:false;not null"`
}
