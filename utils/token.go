package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrTokenInvalido covers every verification failure: bad signature, bad
// structure or expiry. Callers must treat them all as "unauthenticated".
var ErrTokenInvalido = errors.New("token inválido ou expirado")

// JWTSecret returns the signing key. The built-in default is insecure and
// must be overridden via JWT_SECRET in any real deployment.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "chave_secreta_padrao_trocar_em_producao"
	}
	return []byte(secret)
}

func tokenLifetime() time.Duration {
	if h := os.Getenv("JWT_EXPIRATION_HOURS"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			return time.Duration(n) * time.Hour
		}
	}
	return 24 * time.Hour
}

// GenerateToken issues a signed token carrying the user's email as subject.
func GenerateToken(email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": email,
		"iat": now.Unix(),
		"exp": now.Add(tokenLifetime()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JWTSecret())
}

// ParseToken verifies signature and expiry and returns the subject email.
func ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalido
		}
		return JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalido
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrTokenInvalido
	}
	return sub, nil
}

// ValidateToken checks the token and that it belongs to the expected email.
func ValidateToken(tokenString, email string) bool {
	sub, err := ParseToken(tokenString)
	return err == nil && sub == email
}
