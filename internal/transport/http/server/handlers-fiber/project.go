package handlers_fiber

import (
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/entities"
	"taskboard/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists the caller's projects.
func (h *Handler) GetProjects(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}

	projects, err := h.uc.FindProjectsByUserID(c.UserContext(), userID)
	if err != nil {
		h.log.Errorw("failed to list projects", "error", err, "user_id", userID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.ProjectsResponse{Projects: mapper.ToAPIProjectList(projects)})
}

// PostProject creates a project owned by the caller.
func (h *Handler) PostProject(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.CreateProjectRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	p, err := h.uc.CreateProject(c.UserContext(), entities.CreateProjectParams{Name: body.Name, UserID: userID})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(api.ProjectCreatedResponse{
		OK:      true,
		Message: "created successfully",
		Project: mapper.ToAPIProject(*p),
	})
}

// PutProject renames a project. Projects the caller does not own are left untouched.
func (h *Handler) PutProject(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateProjectRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	if err := h.uc.UpdateProjectByID(c.UserContext(), c.Params("id"), userID, entities.UpdateProjectParams{Name: body.Name}); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.OKResponse{OK: true, Message: "updated successfully"})
}

// DeleteProject deletes a project. Projects the caller does not own are left untouched.
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteProjectByID(c.UserContext(), c.Params("id"), userID); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.OKResponse{OK: true, Message: "deleted successfully"})
}
