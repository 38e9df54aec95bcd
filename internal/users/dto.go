package users

// Request is the body of POST and PUT /users. Field rules are enforced at
// the HTTP boundary.
type Request struct {
	Username string `json:"username" validate:"required,notblank,min=3,max=50"`
	Password string `json:"password" validate:"required,notblank,min=6,max=100"`
	Email    string `json:"email" validate:"required,notblank,email"`
}

// Response never carries the password.
type Response struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func toResponse(u User) Response {
	return Response{ID: u.ID, Username: u.Username, Email: u.Email}
}

type Payload struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
