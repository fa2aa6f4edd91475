package dto

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit     int    `form:"limit,default=20"`
	PageToken string `form:"pageToken"`
}

// ListUsersResponse wraps one page of users plus the cursor for the next.
type ListUsersResponse struct {
	Users         []UserResponse `json:"users"`
	NextPageToken string         `json:"nextPageToken,omitempty"`
}
