package middlewares

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"camptrade/controllers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Auth resolves the bearer token to its session payload, which handlers read
// back from the "payload" request header.
func Auth(redis *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		redisPayload, err := ValidateToken(c.Request.Context(), controllers.RequestToken(c), redis)
		if err != nil {
			log.Println(err)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Request.Header.Set("payload", redisPayload)
		c.Next()
	}
}

func ValidateToken(ctx context.Context, authorizationHeader string, redis *redis.Client) (string, error) {
	if !strings.HasPrefix(authorizationHeader, "Bearer ") {
		return "", errors.New("invalid-token")
	}
	tokenString := strings.TrimPrefix(authorizationHeader, "Bearer ")

	redisPayload, err := redis.Get(ctx, tokenString).Result()
	if err != nil {
		return "", err
	}

	if redisPayload == "" {
		return "", errors.New("empty-payload")
	}

	return redisPayload, nil
}
