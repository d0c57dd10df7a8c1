package dto

// ValidateUserRequest credenciales a validar.
type ValidateUserRequest struct {
	Usuario string `json:"usuario"`
	Pass    string `json:"pass"`
}

// ValidateUserResponse usuario validado. Nunca incluye la contraseña.
type ValidateUserResponse struct {
	ID      int64  `json:"id"`
	Usuario string `json:"usuario"`
}
