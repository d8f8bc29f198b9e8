package dto

import "time"

// Career applications arrive as multipart form data, so fields use
// form tags instead of json.
type CareerApplicationRequest struct {
	FullName string `form:"full_name" binding:"required,min=2,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Phone    string `form:"phone" binding:"omitempty,min=7,max=15"`
	Note     string `form:"note" binding:"omitempty,max=2000"`
}

// SetReviewedRequest uses a pointer so an explicit false is
// distinguishable from a missing field.
type SetReviewedRequest struct {
	Reviewed *bool `json:"reviewed" binding:"required"`
}

type CareerApplicationResponse struct {
	ID         uint      `json:"id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	ResumeFile string    `json:"resume_file"`
	Note       string    `json:"note,omitempty"`
	Reviewed   bool      `json:"reviewed"`
	CreatedAt  time.Time `json:"created_at"`
}
