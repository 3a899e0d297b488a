package consts

// User-facing error messages. Wording is part of the API contract; tests assert on it.
const (
	ErrTaskNotFound  = "Task not found."
	ErrUserNotFound  = "User not found"
	ErrUsernameTaken = "Username already exists"
	ErrEmailTaken    = "Email already exists"
	ErrBadPassword   = "Invalid password"
)
