package dto

// SignupRequest body para POST /auth/signup.
type SignupRequest struct {
	LoginID         string `json:"login_id"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	LoginID  string `json:"login_id"`
	Password string `json:"password"`
}

// ForgotRequest body para POST /auth/forgot. Sin OTP solicita el envío; con OTP
// y contraseñas nuevas completa el restablecimiento.
type ForgotRequest struct {
	Email           string `json:"email"`
	OTP             string `json:"otp,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

// UserResponse representación HTTP de un usuario (sin hash).
type UserResponse struct {
	LoginID   string `json:"login_id"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      string `json:"role"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
