package response

import "github.com/jjam103/wedding-platform-v2-sub016/internal/domain"

type LoginResponse struct {
	Token string           `json:"token"`
	User  domain.AdminUser `json:"user"`
}
