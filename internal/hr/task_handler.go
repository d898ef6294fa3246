package hr

import (
	"fmt"
	"strings"
	"time"

	"ciftlik-backend/internal/database"
	"ciftlik-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	EmployeeID  *uint  `json:"employee_id"`
	DueDate     string `json:"due_date"` // "2025-12-09", opsiyonel
	Priority    string `json:"priority"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EmployeeID  *uint   `json:"employee_id"`
	DueDate     *string `json:"due_date"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

type TaskResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	EmployeeID   *uint  `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	DueDate      string `json:"due_date,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority"`
}

func toTaskResponse(task *models.HrTask) TaskResponse {
	resp := TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		EmployeeID:  task.EmployeeID,
		Status:      string(task.Status),
		Priority:    task.Priority,
	}
	if task.Employee != nil {
		resp.EmployeeName = task.Employee.Name
	}
	if task.DueDate != nil {
		resp.DueDate = task.DueDate.Format("2006-01-02")
	}
	return resp
}

func parseTaskStatus(raw string) (models.TaskStatus, error) {
	switch models.TaskStatus(raw) {
	case models.TaskStatusOpen, models.TaskStatusInProgress, models.TaskStatusDone:
		return models.TaskStatus(raw), nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "Geçersiz görev durumu: open, in_progress veya done olmalı")
}

func parseTaskPriority(raw string) (string, error) {
	switch raw {
	case "low", "normal", "high":
		return raw, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "Geçersiz öncelik: low, normal veya high olmalı")
}

// POST /api/tasks
func CreateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		body.Title = strings.TrimSpace(body.Title)
		if body.Title == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Görev başlığı zorunlu")
		}

		priority := "normal"
		if body.Priority != "" {
			p, err := parseTaskPriority(body.Priority)
			if err != nil {
				return err
			}
			priority = p
		}

		task := models.HrTask{
			Title:       body.Title,
			Description: body.Description,
			Status:      models.TaskStatusOpen,
			Priority:    priority,
		}

		if body.EmployeeID != nil {
			var emp models.Employee
			if err := database.DB.First(&emp, "id = ?", *body.EmployeeID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Atanacak çalışan bulunamadı")
			}
			task.EmployeeID = body.EmployeeID
		}

		if body.DueDate != "" {
			d, err := time.Parse("2006-01-02", body.DueDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "due_date formatı 'YYYY-MM-DD' olmalı")
			}
			task.DueDate = &d
		}

		if err := database.DB.Create(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Görev oluşturulamadı")
		}

		database.DB.Preload("Employee").First(&task, task.ID)
		return c.Status(fiber.StatusCreated).JSON(toTaskResponse(&task))
	}
}

// GET /api/tasks?status=open&employee_id=3
func ListTasksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.HrTask{}).Preload("Employee")

		if status := c.Query("status"); status != "" {
			st, err := parseTaskStatus(status)
			if err != nil {
				return err
			}
			dbq = dbq.Where("status = ?", st)
		}
		if employeeID := c.Query("employee_id"); employeeID != "" {
			var id uint
			if _, err := fmt.Sscan(employeeID, &id); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "employee_id sayısal olmalı")
			}
			dbq = dbq.Where("employee_id = ?", id)
		}

		var tasks []models.HrTask
		if err := dbq.Order("created_at desc").Find(&tasks).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Görevler listelenemedi")
		}

		resp := make([]TaskResponse, 0, len(tasks))
		for i := range tasks {
			resp = append(resp, toTaskResponse(&tasks[i]))
		}
		return c.JSON(resp)
	}
}

// PUT /api/tasks/:id
func UpdateTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var task models.HrTask
		if err := database.DB.First(&task, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Görev bulunamadı")
		}

		var body UpdateTaskRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz veri")
		}

		if body.Title != nil {
			title := strings.TrimSpace(*body.Title)
			if title == "" {
				return fiber.NewError(fiber.StatusBadRequest, "Görev başlığı boş olamaz")
			}
			task.Title = title
		}
		if body.Description != nil {
			task.Description = *body.Description
		}
		if body.EmployeeID != nil {
			if *body.EmployeeID == 0 {
				task.EmployeeID = nil
			} else {
				var emp models.Employee
				if err := database.DB.First(&emp, "id = ?", *body.EmployeeID).Error; err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "Atanacak çalışan bulunamadı")
				}
				task.EmployeeID = body.EmployeeID
			}
		}
		if body.DueDate != nil {
			if *body.DueDate == "" {
				task.DueDate = nil
			} else {
				d, err := time.Parse("2006-01-02", *body.DueDate)
				if err != nil {
					return fiber.NewError(fiber.StatusBadRequest, "due_date formatı 'YYYY-MM-DD' olmalı")
				}
				task.DueDate = &d
			}
		}
		if body.Status != nil {
			st, err := parseTaskStatus(*body.Status)
			if err != nil {
				return err
			}
			task.Status = st
		}
		if body.Priority != nil {
			p, err := parseTaskPriority(*body.Priority)
			if err != nil {
				return err
			}
			task.Priority = p
		}

		if err := database.DB.Save(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Görev güncellenemedi")
		}

		database.DB.Preload("Employee").First(&task, task.ID)
		return c.JSON(toTaskResponse(&task))
	}
}

// DELETE /api/tasks/:id
func DeleteTaskHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var task models.HrTask
		if err := database.DB.First(&task, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Görev bulunamadı")
		}

		if err := database.DB.Delete(&task).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Görev silinemedi")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}
