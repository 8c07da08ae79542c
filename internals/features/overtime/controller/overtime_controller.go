package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/overtime/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/overtime/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers/dateutil"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type OTController struct {
	DB       *gorm.DB
	Notify   *notifService.Service
	Validate *validator.Validate
}

func NewOTController(db *gorm.DB, notify *notifService.Service) *OTController {
	return &OTController{DB: db, Notify: notify, Validate: validator.New()}
}

// 🟢 POST /api/ot-reports - file an overtime report for the caller
func (ctrl *OTController) Create(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateOTRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.EndTime.After(req.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End time must be after start time")
	}

	rec := model.OTReportModel{
		OTEmployeeID: employeeID,
		OTDate:       req.Date,
		OTStartTime:  req.StartTime,
		OTEndTime:    req.EndTime,
		OTTotalHours: dateutil.RoundHours2(req.EndTime.Sub(req.StartTime)),
		OTReason:     req.Reason,
		OTProject:    req.Project,
		OTTasks:      req.Tasks,
		OTStatus:     model.StatusPending,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		log.Printf("[ERROR] OT report create failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, employeeID, "Overtime report created",
		"Your overtime report has been submitted and is awaiting review",
		statusPayload(&rec))

	return helper.JsonCreated(c, "Overtime report created", dto.ToOTResponse(&rec))
}

// 🟢 GET /api/ot-reports - paginated list; non-admins see own only
func (ctrl *OTController) GetList(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.OTReportModel{})
	if !middlewares.IsAdmin(c) {
		q = q.Where("ot_employee_id = ?", employeeID)
	}
	q = applyOTFilters(q, c)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] OT report count failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	var list []model.OTReportModel
	if err := q.Order("ot_date DESC, ot_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		log.Printf("[ERROR] OT report listing failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonList(c, "Overtime reports fetched", dto.ToOTResponseList(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/ot-reports/:id - owner or admin
func (ctrl *OTController) GetByID(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	return helper.JsonOK(c, "Overtime report fetched", dto.ToOTResponse(rec))
}

// 🟢 PUT /api/ot-reports/:id - owner or admin, pending only
func (ctrl *OTController) Update(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending reports can be updated")
	}

	var req dto.UpdateOTRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.EndTime.After(req.StartTime) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End time must be after start time")
	}

	rec.OTDate = req.Date
	rec.OTStartTime = req.StartTime
	rec.OTEndTime = req.EndTime
	rec.OTTotalHours = dateutil.RoundHours2(req.EndTime.Sub(req.StartTime))
	rec.OTReason = req.Reason
	rec.OTProject = req.Project
	rec.OTTasks = req.Tasks
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] OT report update failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonUpdated(c, "Overtime report updated", dto.ToOTResponse(rec))
}

// 🟢 DELETE /api/ot-reports/:id - owner or admin, pending only
func (ctrl *OTController) Delete(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending reports can be deleted")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(rec).Error; err != nil {
		log.Printf("[ERROR] OT report delete failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}
	return helper.JsonDeleted(c, "Overtime report deleted", nil)
}

// 🟢 PUT /api/ot-reports/admin/approve/:id - pending only
func (ctrl *OTController) AdminApprove(c *fiber.Ctx) error {
	adminID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	rec, fail := ctrl.load(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending reports can be approved")
	}

	var req dto.ApproveOTRequest
	_ = c.BodyParser(&req) // note is optional, an empty body is fine

	now := time.Now()
	rec.OTStatus = model.StatusApproved
	rec.OTApprovedBy = &adminID
	rec.OTApprovedAt = &now
	if req.AdminNote != "" {
		rec.OTAdminNote = &req.AdminNote
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] OT report approve failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, rec.OTEmployeeID, "Overtime report approved",
		"Your overtime report has been approved", statusPayload(rec))

	return helper.JsonUpdated(c, "Overtime report approved", dto.ToOTResponse(rec))
}

// 🟢 PUT /api/ot-reports/admin/reject/:id - pending only, reason required
func (ctrl *OTController) AdminReject(c *fiber.Ctx) error {
	adminID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	rec, fail := ctrl.load(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending reports can be rejected")
	}

	var req dto.RejectOTRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	rec.OTStatus = model.StatusRejected
	rec.OTRejectedBy = &adminID
	rec.OTRejectedAt = &now
	rec.OTRejectionReason = &req.RejectionReason
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] OT report reject failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, rec.OTEmployeeID, "Overtime report rejected",
		"Your overtime report has been rejected: "+req.RejectionReason, statusPayload(rec))

	return helper.JsonUpdated(c, "Overtime report rejected", dto.ToOTResponse(rec))
}

type failFn func(*fiber.Ctx) error

func (ctrl *OTController) load(c *fiber.Ctx) (*model.OTReportModel, failFn) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid overtime report id")
		}
	}

	var rec model.OTReportModel
	err = ctrl.DB.WithContext(c.UserContext()).First(&rec, "ot_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusNotFound, "Overtime report not found")
		}
	}
	if err != nil {
		log.Printf("[ERROR] OT report lookup failed: %v", err)
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonServerError(c, "Server error", err)
		}
	}
	return &rec, nil
}

func (ctrl *OTController) loadOwned(c *fiber.Ctx) (*model.OTReportModel, failFn) {
	rec, fail := ctrl.load(c)
	if fail != nil {
		return nil, fail
	}
	callerID, err := middlewares.GetUserID(c)
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
	}
	if rec.OTEmployeeID != callerID && !middlewares.IsAdmin(c) {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
		}
	}
	return rec, nil
}

func (ctrl *OTController) notify(c *fiber.Ctx, userID uuid.UUID, title, body string, payload notifService.Payload) {
	if ctrl.Notify == nil {
		return
	}
	if err := ctrl.Notify.Send(c.UserContext(), userID, title, body, payload); err != nil {
		log.Printf("[WARN] Overtime notification failed: %v", err)
	}
}

func statusPayload(rec *model.OTReportModel) notifService.Payload {
	return notifService.RequestStatusPayload{
		RequestID:   rec.OTID,
		RequestKind: "ot_report",
		Status:      rec.OTStatus,
	}
}

func applyOTFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if status := c.Query("status"); status != "" {
		q = q.Where("ot_status = ?", status)
	}
	if project := c.Query("project"); project != "" {
		q = q.Where("ot_project = ?", project)
	}
	if raw := c.Query("startDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q = q.Where("ot_date >= ?", t)
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q = q.Where("ot_date <= ?", t)
		}
	}
	return q
}
