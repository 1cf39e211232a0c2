package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/tendril/pkg/entity"
)

type SessionTokenServiceI interface {
	GenerateToken(session *entity.Session) (string, error)
	ParseToken(tokenString string) (*SessionClaims, error)
}

type SessionClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}
