package dto

import "github.com/techhype/cardlink_backend/internal/core/domain"

// UserResponse is the public projection of a user. Hash and salt never leave
// the service.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// ToUserResponse converts a domain User to its public projection.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		Verified:  user.Verified,
	}
}

// ToListUserResponse converts a page of domain users into the list DTO.
func ToListUserResponse(users []domain.User, nextPageToken string) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users:         userResponses,
		NextPageToken: nextPageToken,
	}
}
