package models

// LoginForm is the body of POST /user/login.
type LoginForm struct {
	Phone    string `json:"phone,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Code     string `json:"code,omitempty"`
}

// RegisterForm is the body of POST /user/register.
type RegisterForm struct {
	Phone    string `json:"phone"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
	Code     string `json:"code,omitempty"`
}

// Feedback is the body of POST /feedback/feedback.
type Feedback struct {
	Text string `json:"text"`
}
