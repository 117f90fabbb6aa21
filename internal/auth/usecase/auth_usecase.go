package usecase

import (
	"errors"
	"time"

	authdomain "umi-backend/internal/auth/domain"
	"umi-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	config *config.Config
}

func NewAuthUsecase(cfg *config.Config) AuthUsecase {
	return &authUsecase{config: cfg}
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, errors.New("invalid token claims")
	}

	session := &authdomain.Session{UserID: userID}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if orgID, ok := claims["org_id"].(string); ok {
		session.OrgID = orgID
	}

	return session, nil
}

func (u *authUsecase) IssueWidgetToken(session *authdomain.Session) (string, time.Time, error) {
	expiresAt := time.Now().Add(u.config.WidgetTokenExpiry)

	claims := jwt.MapClaims{
		"user_id": session.UserID,
		"email":   session.Email,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}
	if session.OrgID != "" {
		claims["org_id"] = session.OrgID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
