package dto

// RegisterRequestDTO carries the signup payload. Role picks which side of
// the marketplace the account lives on; staff accounts are provisioned out
// of band and cannot be self-registered.
type RegisterRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50" example:"ab_the_seller"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=buyer seller" example:"seller"`
}

type RegisterResponseDTO struct {
	Message string `json:"message" example:"User registered successfully"`
}

// LoginRequestDTO carries the credentials check payload. The issued JWT is
// returned in the Authorization header, not the body.
type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message" example:"Authentication successful"`
}
