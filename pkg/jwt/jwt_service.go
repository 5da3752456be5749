package jwt

import (
	"Leafia-Backend/domain"
	"Leafia-Backend/internal/utils"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v4"
	"log"
	"time"
)

// TokenDuration is the fixed credential lifetime for admin sessions.
const TokenDuration = 30 * 24 * time.Hour

type (
	JWTService interface {
		GenerateTokenAdmin(adminID string) string
		ValidateTokenAdmin(token string) (*jwt.Token, error)
		GetAdminIDByToken(token string) (string, error)
	}

	jwtAdminClaim struct {
		AdminID string `json:"admin_id"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    "LEAFIA",
	}
}

func (j *jwtService) GenerateTokenAdmin(adminID string) string {
	claims := jwtAdminClaim{
		adminID,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenDuration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenAdmin(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtAdminClaim{}, j.parseToken)
}

func (j *jwtService) GetAdminIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateTokenAdmin(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtAdminClaim)
	return claims.AdminID, nil
}
