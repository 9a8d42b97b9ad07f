package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/ArowuTest/nft-raffle-backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// JWTAuthMiddleware creates a gin middleware for JWT authentication.
func JWTAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	jwtSecret := []byte(cfg.JWT.Secret)

	return func(c *gin.Context) {
		if len(jwtSecret) == 0 {
			log.Println("[ERROR] JWTAuthMiddleware: JWT secret is not configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication is not configured"})
			return
		}

		const BearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Println("[WARN] JWTAuthMiddleware: Authorization header is missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}
		if !strings.HasPrefix(authHeader, BearerSchema) {
			log.Println("[WARN] JWTAuthMiddleware: Authorization header format is invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must start with Bearer "})
			return
		}

		tokenString := authHeader[len(BearerSchema):]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return jwtSecret, nil
		})
		if err != nil {
			log.Printf("[WARN] JWTAuthMiddleware: Token parsing/validation failed: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}
		c.Set(ContextUserID, claims["sub"])
		c.Set(ContextUserEmail, claims["email"])
		c.Set(ContextUserRole, claims["role"])
		c.Next()
	}
}

// RequireRole rejects requests whose token role is not role. It must run
// after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if got, _ := c.Get(ContextUserRole); got != role {
			log.Printf("[WARN] RequireRole: %s denied, role %v", c.GetString(ContextUserEmail), got)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
