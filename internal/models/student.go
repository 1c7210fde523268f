package models

// Student is owned by the server; the client only reads it
type Student struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	RollNumber     string    `json:"roll_number"`
	ClassName      string    `json:"class_name"`
	CareerInterest *string   `json:"career_interest"`
	CreatedAt      Timestamp `json:"created_at"`
}

// Interest returns the career-interest tag, or "" when unset
func (s Student) Interest() string {
	if s.CareerInterest == nil {
		return ""
	}
	return *s.CareerInterest
}

// NewStudent is the request body for creating a student
type NewStudent struct {
	Name           string  `json:"name" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	RollNumber     string  `json:"roll_number" validate:"required"`
	ClassName      string  `json:"class_name" validate:"required"`
	CareerInterest *string `json:"career_interest,omitempty"`
}
