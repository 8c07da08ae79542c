package controller

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/model"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/repository"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/attendance/service"
	userModel "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type AttendanceController struct {
	DB      *gorm.DB
	Repo    *repository.Repository
	Service *service.Service
}

func NewAttendanceController(db *gorm.DB, svc *service.Service, repo *repository.Repository) *AttendanceController {
	return &AttendanceController{DB: db, Service: svc, Repo: repo}
}

// 🟢 POST /api/attendance/check - toggle check-in/check-out for the caller
func (ctrl *AttendanceController) CheckInOut(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	res, err := ctrl.Service.Toggle(c.UserContext(), employeeID, time.Now())
	if err != nil {
		log.Printf("[ERROR] Attendance toggle failed for %s: %v", employeeID, err)
		return helper.JsonServerError(c, "Server error", err)
	}

	msg := "Check in successful"
	if res.Action == service.ActionCheckOut {
		msg = "Check out successful"
	}
	return helper.JsonOK(c, msg, dto.ToAttendanceResponse(res.Record))
}

// 🟢 GET /api/attendance/history - the caller's records + statistics
func (ctrl *AttendanceController) GetHistory(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 100)
	filter := repository.HistoryFilter{
		EmployeeID: &employeeID,
		StartDate:  parseDateQuery(c, "startDate"),
		EndDate:    parseDateQuery(c, "endDate"),
		Status:     c.Query("status"),
	}

	records, total, err := ctrl.Repo.List(c.UserContext(), filter, paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[ERROR] Attendance history query failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonOK(c, "Attendance history fetched", dto.HistoryResponse{
		Records:    dto.ToAttendanceResponseList(records),
		Statistics: dto.BuildStatistics(records),
		Pagination: helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
	})
}

// 🟢 GET /api/attendance/admin/all - cross-employee view with employee email
func (ctrl *AttendanceController) GetAllEmployees(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	filter := repository.HistoryFilter{
		StartDate: parseDateQuery(c, "startDate"),
		EndDate:   parseDateQuery(c, "endDate"),
		Status:    c.Query("status"),
	}
	if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employeeId")
		}
		filter.EmployeeID = &id
	}

	records, total, err := ctrl.Repo.List(c.UserContext(), filter, paging.Limit, paging.Offset)
	if err != nil {
		log.Printf("[ERROR] Admin attendance query failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	emails, err := ctrl.employeeEmails(c.UserContext(), records)
	if err != nil {
		log.Printf("[ERROR] Employee lookup failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	out := make([]dto.AdminAttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, dto.AdminAttendanceResponse{
			AttendanceResponse: dto.ToAttendanceResponse(&records[i]),
			EmployeeEmail:      emails[records[i].AttendanceEmployeeID],
		})
	}

	return helper.JsonList(c, "Attendance records fetched", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// employeeEmails resolves the distinct employee ids of a result page to
// their emails in one query.
func (ctrl *AttendanceController) employeeEmails(ctx context.Context, records []model.AttendanceModel) (map[uuid.UUID]string, error) {
	seen := map[uuid.UUID]struct{}{}
	ids := make([]uuid.UUID, 0, len(records))
	for i := range records {
		id := records[i].AttendanceEmployeeID
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	emails := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return emails, nil
	}

	var users []userModel.UserModel
	if err := ctrl.DB.WithContext(ctx).
		Select("user_id", "user_email").
		Where("user_id IN ?", ids).
		Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		emails[users[i].UserID] = users[i].UserEmail
	}
	return emails, nil
}

func parseDateQuery(c *fiber.Ctx, name string) *time.Time {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	return nil
}
