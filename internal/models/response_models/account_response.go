package response_models

type AccountLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
