package handlers_fiber

import (
	"net/http"

	"taskboard/internal/api"
	"taskboard/internal/entities"
	"taskboard/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTasks lists the caller's tasks of project :id.
func (h *Handler) GetTasks(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}

	tasks, err := h.uc.FindTasksByProjectID(c.UserContext(), c.Params("id"), userID)
	if err != nil {
		h.log.Errorw("failed to list tasks", "error", err, "user_id", userID)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.TasksResponse{Tasks: mapper.ToAPITaskList(tasks)})
}

// PostTask adds a task to project :id.
func (h *Handler) PostTask(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.CreateTaskRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	t, err := h.uc.CreateTask(c.UserContext(), c.Params("id"), userID, entities.CreateTaskParams{Title: body.Title})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.TaskCreatedResponse{OK: true, Task: mapper.ToAPITask(*t)})
}

// PutTask partially updates task :id of project :projectId.
func (h *Handler) PutTask(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}
	var body api.UpdateTaskRequest
	if err := decodeBody(c, &body); err != nil {
		return err
	}

	err = h.uc.UpdateTaskByID(c.UserContext(), c.Params("projectId"), userID, c.Params("id"), mapper.FromUpdateTaskRequest(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.OKResponse{OK: true})
}

// DeleteTask deletes task :id of project :projectId.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	userID, err := actingUser(c)
	if err != nil {
		return writeError(c, err)
	}

	if err := h.uc.DeleteTaskByID(c.UserContext(), c.Params("projectId"), userID, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.OKResponse{OK: true})
}
