package dto

type SendCodeRequest struct {
	Phone string `json:"phone"`
}

type LoginRequest struct {
	Phone    string `json:"phone"`
	Username string `json:"username,omitempty"`
	Code     string `json:"code,omitempty"`
}

type DirectLoginRequest struct {
	Phone string `json:"phone"`
}

type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}

type AuthClaims struct {
	Phone  string  `json:"phone"`
	Iat    float64 `json:"iat"`
	Expiry float64 `json:"expiry"`
}
