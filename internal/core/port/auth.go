package port

import "github.com/restocinta/orderdesk/internal/core/domain"

type TokenPayload struct {
	StaffID uint64
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(staff *domain.Staff) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
