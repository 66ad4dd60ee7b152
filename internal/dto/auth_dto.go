package dto

// SignInRequest carries operator credentials. Either user_name or email may
// be supplied; lookup treats them as alternatives.
type SignInRequest struct {
	UserName string `json:"user_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignInUser struct {
	ID   string `json:"_id"`
	Role int    `json:"role"`
}

type SignInResponse struct {
	Message string     `json:"message"`
	Token   string     `json:"token"`
	User    SignInUser `json:"user"`
}

// AdminProfileResponse feeds the dashboard header widget.
type AdminProfileResponse struct {
	Username   string `json:"username"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
}

// ErrorResponse is the `{error: "..."}` failure shape.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the `{message: "..."}` shape used by the auth, profile
// and terms endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
