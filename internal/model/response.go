package model

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

type ContactList struct {
	Contacts []Contact `json:"contacts"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
