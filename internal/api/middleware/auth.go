package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/TurnIt/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "role"
	emailKey  contextKey = "email"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "token inválido o expirado"
)

// Claims claims токена внешнего провайдера аутентификации
// Subject - ID пользователя
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Authenticator проверяет bearer JWT (HMAC)
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

// NewAuthenticator создает проверку токенов; пустой issuer не проверяется
func NewAuthenticator(secret, issuer string) *Authenticator {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	return &Authenticator{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}
}

// Required пропускает только запросы с валидным токеном
func (a *Authenticator) Required(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

// Optional добавляет пользователя в контекст, если токен передан и валиден
// Запрос без токена проходит анонимно, с невалидным токеном - отклоняется
func (a *Authenticator) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.parse(raw)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	})
}

func (a *Authenticator) parse(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := a.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("token without subject")
	}
	return claims, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// WithClaims кладет пользователя, роль и email из claims в контекст
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, userIDKey, claims.Subject)
	ctx = context.WithValue(ctx, roleKey, claims.Role)
	return context.WithValue(ctx, emailKey, claims.Email)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetRole извлекает роль из claims токена
func GetRole(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

// GetEmail извлекает email из claims токена
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// WithUserID кладет ID пользователя в контекст
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithClaims(ctx, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID}})
}
