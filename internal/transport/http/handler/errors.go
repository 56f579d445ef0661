package handler

const (
	errInternalServer     = "Internal server error"
	errTaskNotFound       = "Task not found"
	errEmailTaken         = "User already exists"
	errInvalidCredentials = "Invalid credentials"
	errInvalidTaskID      = "Invalid task ID"
)
