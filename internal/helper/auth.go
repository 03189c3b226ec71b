package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/interview-express/experience_service/internal/dto"
)

type Auth struct {
	Secret string
	Expiry time.Duration
}

func SetupAuth(secret string, expiry time.Duration) Auth {
	if expiry <= 0 {
		expiry = 30 * time.Minute
	}
	return Auth{
		Secret: secret,
		Expiry: expiry,
	}
}

// GenerateToken signs an access token carrying the user's phone as subject.
func (a Auth) GenerateToken(phone string) (string, error) {
	if phone == "" {
		return "", errors.New("required inputs are missing to generate token")
	}

	now := time.Now().Unix()
	exp := time.Now().Add(a.Expiry).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": phone,
		"iat": now,
		"exp": exp,
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}

	return tokenStr, nil
}

func (a Auth) VerifyToken(tokenString string) (dto.AuthClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return dto.AuthClaims{}, errors.New("missing token")
	}

	// support both:
	// - "Bearer <token>"
	// - "<token>"
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return dto.AuthClaims{}, errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return dto.AuthClaims{}, errors.New("token parse error")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return dto.AuthClaims{}, errors.New("invalid token claims")
	}

	expAny, ok := claims["exp"]
	if !ok {
		return dto.AuthClaims{}, errors.New("missing expiry")
	}
	expFloat, ok := expAny.(float64)
	if !ok {
		return dto.AuthClaims{}, errors.New("invalid expiry type")
	}
	if float64(time.Now().Unix()) > expFloat {
		return dto.AuthClaims{}, errors.New("token expired")
	}

	phone, ok := claims["sub"].(string)
	if !ok || phone == "" {
		return dto.AuthClaims{}, errors.New("missing subject")
	}

	iat, _ := claims["iat"].(float64)

	return dto.AuthClaims{
		Phone:  phone,
		Iat:    iat,
		Expiry: expFloat,
	}, nil
}

func (a Auth) GetCurrentPhone(ctx *fiber.Ctx) (string, error) {
	v := ctx.Locals("phone")
	phone, ok := v.(string)
	if !ok || phone == "" {
		return "", errors.New("missing auth user in context")
	}
	return phone, nil
}
