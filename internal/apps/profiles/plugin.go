package profiles

import (
	"github.com/ahmetcoskunkizilkaya/profilehub/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProfilesPlugin struct{}

func New() *ProfilesPlugin {
	return &ProfilesPlugin{}
}

func (p *ProfilesPlugin) ID() string { return "profiles" }

func (p *ProfilesPlugin) Models() []interface{} {
	return []interface{}{
		&Profile{},
	}
}

func (p *ProfilesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	svc := NewProfileService(db)
	handler := NewProfileHandler(svc)

	router.Get("/profiles", handler.List)
	router.Post("/profiles", handler.Create)
	router.Get("/profiles/:id", handler.Get)
	router.Put("/profiles/:id", handler.Update)
	router.Delete("/profiles/:id", handler.Delete)
}
