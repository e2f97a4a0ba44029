package middleware

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows the browser client configured in CORS_ORIGINS. Credentials are
// only allowed for an explicit origin list; Fiber rejects them with "*".
func CORS(cfg *config.Config) fiber.Handler {
	origins := normalizeOrigins(cfg.CORSOrigins)
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "X-Request-ID",
		AllowCredentials: origins != "*",
		MaxAge:           600,
	})
}

func normalizeOrigins(raw string) string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p == "*" {
			return "*"
		}
		if p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return "*"
	}
	return strings.Join(origins, ",")
}
