package dto

type LoginInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	DeviceID  string `json:"deviceId"`
	IPAddress string `json:"-"`
}

type TwoFactorLoginInput struct {
	Email     string `json:"email"`
	Code      string `json:"code"`
	DeviceID  string `json:"deviceId"`
	IPAddress string `json:"-"`
}
