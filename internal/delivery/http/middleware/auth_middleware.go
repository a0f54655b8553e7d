package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"fisiogestao/internal/domain/repository"
	"fisiogestao/pkg/jwt"
	"fisiogestao/pkg/response"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type contextKey string

const (
	PractitionerIDKey contextKey = "fisioterapeuta_id"
	IsAdminKey        contextKey = "is_admin"
	TokenIDKey        contextKey = "token_id"
)

type AuthMiddleware struct {
	jwtService       *jwt.JWTService
	redisClient      *redis.Client
	db               *gorm.DB
	practitionerRepo repository.PractitionerRepository
}

func NewAuthMiddleware(
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	db *gorm.DB,
	practitionerRepo repository.PractitionerRepository,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:       jwtService,
		redisClient:      redisClient,
		db:               db,
		practitionerRepo: practitionerRepo,
	}
}

// SessionTokenKey is the Redis key holding an issued session token.
func SessionTokenKey(practitionerID int64, tokenID string) string {
	return fmt.Sprintf("session_token:%d:%s", practitionerID, tokenID)
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Token de acesso necessário")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Token inválido")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Token inválido ou expirado")
			return
		}

		// Revoked on logout: token must still exist in Redis.
		tokenKey := SessionTokenKey(claims.FisioterapeutaID, claims.TokenID)
		exists, err := m.redisClient.Exists(r.Context(), tokenKey).Result()
		if err != nil {
			response.InternalServerError(w, "Falha ao validar token")
			return
		}
		if exists == 0 {
			response.Unauthorized(w, "Token revogado")
			return
		}

		practitioner, err := m.practitionerRepo.FindByID(m.db.WithContext(r.Context()), claims.FisioterapeutaID)
		if err != nil {
			response.InternalServerError(w, "Falha ao validar token")
			return
		}
		if practitioner == nil || !practitioner.Ativo {
			response.Unauthorized(w, "Usuário inválido ou inativo")
			return
		}

		ctx := context.WithValue(r.Context(), PractitionerIDKey, practitioner.ID)
		ctx = context.WithValue(ctx, IsAdminKey, practitioner.IsAdmin)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPractitionerIDFromContext extracts the authenticated practitioner id.
func GetPractitionerIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(PractitionerIDKey).(int64)
	return id, ok
}

// GetIsAdminFromContext extracts the admin flag of the authenticated practitioner.
func GetIsAdminFromContext(ctx context.Context) (bool, bool) {
	isAdmin, ok := ctx.Value(IsAdminKey).(bool)
	return isAdmin, ok
}

// GetTokenIDFromContext extracts the session token id.
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}
