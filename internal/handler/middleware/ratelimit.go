package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LoginRateLimit throttles credential attempts per client IP. The upstream
// collapses bad credentials and rejections into one error, so brute force is
// slowed here rather than distinguished there.
func LoginRateLimit() gin.HandlerFunc {
	clients := make(map[string]*clientLimiter)
	var mu sync.Mutex

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		defer mu.Unlock()

		client, exists := clients[ip]
		if !exists {
			client = &clientLimiter{limiter: rate.NewLimiter(rate.Every(time.Minute), 5)}
			clients[ip] = client
		}
		client.lastSeen = time.Now()

		if !client.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": gin.H{"message": "Too many login attempts"}})
			c.Abort()
			return
		}

		for ip, client := range clients {
			if time.Since(client.lastSeen) > 30*time.Minute {
				delete(clients, ip)
			}
		}

		c.Next()
	}
}
