package models

// ListMeta carries pagination metadata alongside a list response.
type ListMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// SuccessResponse is the envelope for every successful response.
type SuccessResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	Meta    *ListMeta `json:"meta,omitempty"`
}

// AuthResponse is the envelope returned by register and login.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Details any                 `json:"details,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
