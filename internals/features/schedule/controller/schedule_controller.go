package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/repository"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/schedule/service"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type ScheduleController struct {
	DB       *gorm.DB
	Repo     *repository.Repository
	Service  *service.Service
	Validate *validator.Validate
}

func NewScheduleController(db *gorm.DB, svc *service.Service, repo *repository.Repository) *ScheduleController {
	return &ScheduleController{
		DB:       db,
		Repo:     repo,
		Service:  svc,
		Validate: validator.New(),
	}
}

// 🟢 GET /api/schedule/current - the week covering today, null when none
func (ctrl *ScheduleController) GetCurrent(c *fiber.Ctx) error {
	sched, err := ctrl.Service.CurrentWeek(c.UserContext(), time.Now())
	if err != nil {
		log.Printf("[ERROR] Current schedule lookup failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}
	if sched == nil {
		return helper.JsonOK(c, "No schedule for the current week", nil)
	}
	return helper.JsonOK(c, "Schedule fetched", dto.ToScheduleResponse(sched))
}

// 🟢 GET /api/schedule/all - admin listing, newest week first
func (ctrl *ScheduleController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)

	list, total, err := ctrl.Repo.List(c.UserContext(), paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[ERROR] Schedule listing failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonList(c, "Schedules fetched", dto.ToScheduleResponseList(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 POST /api/schedule - admin creates a week and notifies everyone on it
func (ctrl *ScheduleController) Create(c *fiber.Ctx) error {
	adminID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	sched, err := ctrl.Service.CreateWeek(c.UserContext(), req.WeekStart, req.WeekEnd, req.Days, adminID)
	switch {
	case errors.Is(err, service.ErrInvalidWeekSpan), errors.Is(err, service.ErrInvalidDayCount):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		log.Printf("[ERROR] Schedule create failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonCreated(c, "Schedule created", dto.ToScheduleResponse(sched))
}

// 🟢 PUT /api/schedule/:scheduleId - admin replaces the day plans of a week
func (ctrl *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("scheduleId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	sched, err := ctrl.Service.UpdateWeek(c.UserContext(), id, req.Days)
	switch {
	case errors.Is(err, service.ErrEmptyDays):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule not found")
	case err != nil:
		log.Printf("[ERROR] Schedule update failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonUpdated(c, "Schedule updated", dto.ToScheduleResponse(sched))
}
