package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const activityKeyPrefix = "nodestatus:last_seen:"

// TrackActivity records the last time any authenticated user of a
// facility touched the API. The node status board derives online/idle/
// offline from the age of these keys.
func TrackActivity(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		facility := c.GetString("facility")
		if facility == "" {
			return
		}

		now := time.Now().UTC().Format(time.RFC3339)
		_ = rdb.Set(c.Request.Context(), activityKeyPrefix+facility, now, 0).Err()
		_ = rdb.SAdd(c.Request.Context(), "nodestatus:nodes", facility).Err()
	}
}
