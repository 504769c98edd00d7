package dto

type RegisterDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required" validate:"min=8,max=64"`
	Name     string `json:"name" binding:"required" validate:"min=1,max=50"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required" validate:"email"`
	Password string `json:"password" binding:"required"`
}

// OAuthLoginDTO carries the authorization code handed back by the provider's
// consent screen.
type OAuthLoginDTO struct {
	Provider string `json:"provider" binding:"required,oneof=GOOGLE KAKAO NAVER"`
	Code     string `json:"code" binding:"required"`
}

type RefreshDTO struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenPairDTO struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type UserDTO struct {
	ID       uint64 `json:"id"`
	Email    string `json:"email,omitempty"`
	Name     string `json:"name"`
	Picture  string `json:"picture,omitempty"`
	Role     string `json:"role"`
	Provider string `json:"provider"`
}

type UpdateProfileDTO struct {
	Name    string `json:"name" validate:"max=50"`
	Picture string `json:"picture" validate:"max=512"`
}
