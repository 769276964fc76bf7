package middlewares

import (
	"net/http"
	"os"
	"time"

	"civic-reporter-be/config"

	"github.com/gin-gonic/gin"
)

// IssueRateLimiter caps how many issues a citizen may submit per day.
func IssueRateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		citizenIDVal, _ := c.Get("citizen_id")
		citizenID, ok := citizenIDVal.(string)
		if !ok || citizenID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "citizen identity missing"})
			c.Abort()
			return
		}

		ctx := config.Ctx
		queuePrefix := os.Getenv("REDIS_QUEUE_FOR_ISSUE_LIMIT")
		if queuePrefix == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Redis queue not configured"})
			c.Abort()
			return
		}

		// Create individual key for each citizen
		citizenKey := queuePrefix + ":" + citizenID

		// Increment citizen's count with TTL
		count, err := config.RedisClient.Incr(ctx, citizenKey).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			c.Abort()
			return
		}

		// Set TTL only for the first increment (when count = 1)
		if count == 1 {
			err = config.RedisClient.Expire(ctx, citizenKey, 24*time.Hour).Err()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				c.Abort()
				return
			}
		}

		// Check if citizen exceeded limit
		if count > int64(limit) {
			retryAfter, _ := config.RedisClient.TTL(ctx, citizenKey).Result()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
