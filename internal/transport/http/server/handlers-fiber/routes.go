package handlers_fiber

import (
	"github.com/gofiber/fiber/v2"
)

// Middlewares are the route-level guards applied by RegisterHandlers.
type Middlewares struct {
	Auth      fiber.Handler
	RateLimit fiber.Handler
}

// RegisterHandlers mounts the API on r.
func RegisterHandlers(r fiber.Router, h *Handler, mw Middlewares) {
	rl := mw.RateLimit
	if rl == nil {
		rl = passThrough
	}

	r.Get("/", h.GetRoot)
	r.Post("/signup", rl, h.PostSignup)
	r.Post("/login", rl, h.PostLogin)

	projects := r.Group("/projects", mw.Auth)
	projects.Get("/", h.GetProjects)
	projects.Post("/", h.PostProject)
	projects.Put("/:id", h.PutProject)
	projects.Delete("/:id", h.DeleteProject)

	projects.Get("/:id/tasks", h.GetTasks)
	projects.Post("/:id/tasks", h.PostTask)
	projects.Put("/:projectId/tasks/:id", h.PutTask)
	projects.Delete("/:projectId/tasks/:id", h.DeleteTask)
}

func passThrough(c *fiber.Ctx) error {
	return c.Next()
}
