package dto

import "github.com/yukikurage/worklog-api/internal/models"

// CredentialsRequest is the register and login body, sent as a form or JSON
type CredentialsRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// UserDTO represents a user in API responses
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

// DashboardDTO carries what the dashboard page greets the user with
type DashboardDTO struct {
	Username string `json:"username"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
	}
}

// PageDTO names the page a browser request resolved to
type PageDTO struct {
	Page string `json:"page"`
}
