package staff

import "time"

// User is a staff account (doctor, nurse, admin) on the practice dashboard.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           string    `json:"role"`
	ProfileImage   *string   `json:"profileImage,omitempty"`
	Specialization *string   `json:"specialization,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DefaultRole is assigned when a new account omits a role.
const DefaultRole = "doctor"

// CreateUser is the input for creating a staff account.
type CreateUser struct {
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Role           string  `json:"role"`
	ProfileImage   *string `json:"profileImage"`
	Specialization *string `json:"specialization"`
}

// UpdateUser carries a partial update; nil fields are left untouched.
type UpdateUser struct {
	Email          *string `json:"email"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Role           *string `json:"role"`
	ProfileImage   *string `json:"profileImage"`
	Specialization *string `json:"specialization"`
}
