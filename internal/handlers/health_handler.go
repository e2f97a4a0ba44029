package handlers

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/database"
	"github.com/ahmetcoskunkizilkaya/daily-tracker/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live answers the plaintext liveness probe on /.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.SendString("Daily tracker API is running")
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
