package model

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `gorm:"column:name;not null"`
	Slug        string `gorm:"column:slug;unique;not null"`
	Description string `gorm:"column:description"`
	ImageFile   string `gorm:"column:image_file"`
	Active      bool   `gorm:"column:active;default:true;not null"`
}
