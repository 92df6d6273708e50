package dto

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
	DeviceID     string `json:"deviceId"`
	IPAddress    string `json:"-"`
}

type RevokeTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
