package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrEmptyKey     = errors.New("token key is required")
)

// Payload 只帶外部身分服務給的 userId
type Payload struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// TokenVerifier 驗證外部身分服務簽發的 bearer token
type TokenVerifier interface {
	VerifyToken(token string) (*Payload, error)
}

// JWTMaker HS256, 簽發只給測試與本機工具使用
type JWTMaker struct {
	secretKey []byte
}

func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if secretKey == "" {
		return nil, ErrEmptyKey
	}
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

func (m *JWTMaker) CreateToken(userID string, duration time.Duration) (string, error) {
	now := time.Now()
	payload := &Payload{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(duration).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secretKey)
}

func (m *JWTMaker) VerifyToken(tokenStr string) (*Payload, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}
		return m.secretKey, nil
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Payload{}, keyFunc)
	if err != nil {
		var verr *jwt.ValidationError
		if errors.As(err, &verr) && verr.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	payload, ok := token.Claims.(*Payload)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if payload.UserID == "" {
		payload.UserID = payload.Subject
	}
	if payload.UserID == "" {
		return nil, ErrInvalidToken
	}
	return payload, nil
}

var _ TokenVerifier = (*JWTMaker)(nil)
