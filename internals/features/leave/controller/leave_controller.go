package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/leave/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/leave/model"
	notifService "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/notifications/service"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/middlewares"
)

type LeaveController struct {
	DB       *gorm.DB
	Notify   *notifService.Service
	Validate *validator.Validate
}

func NewLeaveController(db *gorm.DB, notify *notifService.Service) *LeaveController {
	return &LeaveController{DB: db, Notify: notify, Validate: validator.New()}
}

// 🟢 POST /api/leave-requests - create a pending request for the caller
func (ctrl *LeaveController) Create(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must not be before start date")
	}

	rec := model.LeaveRequestModel{
		LeaveEmployeeID: employeeID,
		LeaveType:       req.Type,
		LeaveReason:     req.Reason,
		LeaveStartDate:  req.StartDate,
		LeaveEndDate:    req.EndDate,
		LeaveStatus:     model.StatusPending,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		log.Printf("[ERROR] Leave request create failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, employeeID, "Leave request created",
		"Your leave request has been submitted and is awaiting review",
		statusPayload(&rec))

	return helper.JsonCreated(c, "Leave request created", dto.ToLeaveResponse(&rec))
}

// 🟢 GET /api/leave-requests/leaves - paginated list; non-admins see own only
func (ctrl *LeaveController) GetList(c *fiber.Ctx) error {
	employeeID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	paging := helper.ResolvePaging(c, 10, 100)
	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.LeaveRequestModel{})
	if !middlewares.IsAdmin(c) {
		q = q.Where("leave_employee_id = ?", employeeID)
	}
	q = applyLeaveFilters(q, c)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Leave request count failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	var list []model.LeaveRequestModel
	if err := q.Order("leave_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		log.Printf("[ERROR] Leave request listing failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonList(c, "Leave requests fetched", dto.ToLeaveResponseList(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/leave-requests/:id - owner or admin
func (ctrl *LeaveController) GetByID(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	return helper.JsonOK(c, "Leave request fetched", dto.ToLeaveResponse(rec))
}

// 🟢 PUT /api/leave-requests/:id - owner or admin, pending only
func (ctrl *LeaveController) Update(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending requests can be updated")
	}

	var req dto.UpdateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.EndDate.Before(req.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must not be before start date")
	}

	rec.LeaveType = req.Type
	rec.LeaveReason = req.Reason
	rec.LeaveStartDate = req.StartDate
	rec.LeaveEndDate = req.EndDate
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] Leave request update failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonUpdated(c, "Leave request updated", dto.ToLeaveResponse(rec))
}

// 🟢 DELETE /api/leave-requests/:id - owner or admin, pending only
func (ctrl *LeaveController) Delete(c *fiber.Ctx) error {
	rec, fail := ctrl.loadOwned(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending requests can be deleted")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(rec).Error; err != nil {
		log.Printf("[ERROR] Leave request delete failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}
	return helper.JsonDeleted(c, "Leave request deleted", nil)
}

// 🟢 GET /api/leave-requests/admin/all - every employee's requests
func (ctrl *LeaveController) AdminGetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 10, 100)
	q := applyLeaveFilters(ctrl.DB.WithContext(c.UserContext()).Model(&model.LeaveRequestModel{}), c)
	if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid employeeId")
		}
		q = q.Where("leave_employee_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Leave request count failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	var list []model.LeaveRequestModel
	if err := q.Order("leave_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&list).Error; err != nil {
		log.Printf("[ERROR] Leave request listing failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonList(c, "Leave requests fetched", dto.ToLeaveResponseList(list),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// 🟢 GET /api/leave-requests/admin/details/:id
func (ctrl *LeaveController) AdminGetDetails(c *fiber.Ctx) error {
	rec, fail := ctrl.load(c)
	if fail != nil {
		return fail(c)
	}
	return helper.JsonOK(c, "Leave request fetched", dto.ToLeaveResponse(rec))
}

// 🟢 PUT /api/leave-requests/admin/approve/:id - pending only
func (ctrl *LeaveController) AdminApprove(c *fiber.Ctx) error {
	adminID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	rec, fail := ctrl.load(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending requests can be approved")
	}

	var req dto.ApproveLeaveRequest
	_ = c.BodyParser(&req) // note is optional, an empty body is fine

	now := time.Now()
	rec.LeaveStatus = model.StatusApproved
	rec.LeaveApprovedBy = &adminID
	rec.LeaveApprovedAt = &now
	if req.AdminNote != "" {
		rec.LeaveAdminNote = &req.AdminNote
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] Leave request approve failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, rec.LeaveEmployeeID, "Leave request approved",
		"Your leave request has been approved", statusPayload(rec))

	return helper.JsonUpdated(c, "Leave request approved", dto.ToLeaveResponse(rec))
}

// 🟢 PUT /api/leave-requests/admin/reject/:id - pending only, reason required
func (ctrl *LeaveController) AdminReject(c *fiber.Ctx) error {
	adminID, err := middlewares.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	rec, fail := ctrl.load(c)
	if fail != nil {
		return fail(c)
	}
	if !rec.IsPending() {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending requests can be rejected")
	}

	var req dto.RejectLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now()
	rec.LeaveStatus = model.StatusRejected
	rec.LeaveRejectedBy = &adminID
	rec.LeaveRejectedAt = &now
	rec.LeaveRejectionReason = &req.RejectionReason
	if err := ctrl.DB.WithContext(c.UserContext()).Save(rec).Error; err != nil {
		log.Printf("[ERROR] Leave request reject failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	ctrl.notify(c, rec.LeaveEmployeeID, "Leave request rejected",
		"Your leave request has been rejected: "+req.RejectionReason, statusPayload(rec))

	return helper.JsonUpdated(c, "Leave request rejected", dto.ToLeaveResponse(rec))
}

type failFn func(*fiber.Ctx) error

// load fetches the request from :id, without an ownership check.
func (ctrl *LeaveController) load(c *fiber.Ctx) (*model.LeaveRequestModel, failFn) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid leave request id")
		}
	}

	var rec model.LeaveRequestModel
	err = ctrl.DB.WithContext(c.UserContext()).First(&rec, "leave_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusNotFound, "Leave request not found")
		}
	}
	if err != nil {
		log.Printf("[ERROR] Leave request lookup failed: %v", err)
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonServerError(c, "Server error", err)
		}
	}
	return &rec, nil
}

// loadOwned additionally enforces owner-or-admin access.
func (ctrl *LeaveController) loadOwned(c *fiber.Ctx) (*model.LeaveRequestModel, failFn) {
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
	if rec.LeaveEmployeeID != callerID && !middlewares.IsAdmin(c) {
		return nil, func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden")
		}
	}
	return rec, nil
}

func (ctrl *LeaveController) notify(c *fiber.Ctx, userID uuid.UUID, title, body string, payload notifService.Payload) {
	if ctrl.Notify == nil {
		return
	}
	if err := ctrl.Notify.Send(c.UserContext(), userID, title, body, payload); err != nil {
		log.Printf("[WARN] Leave notification failed: %v", err)
	}
}

func statusPayload(rec *model.LeaveRequestModel) notifService.Payload {
	return notifService.RequestStatusPayload{
		RequestID:   rec.LeaveID,
		RequestKind: "leave_request",
		Status:      rec.LeaveStatus,
	}
}

func applyLeaveFilters(q *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if status := c.Query("status"); status != "" {
		q = q.Where("leave_status = ?", status)
	}
	if typ := c.Query("type"); typ != "" {
		q = q.Where("leave_type = ?", typ)
	}
	if raw := c.Query("startDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q = q.Where("leave_end_date >= ?", t)
		}
	}
	if raw := c.Query("endDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			q = q.Where("leave_start_date <= ?", t)
		}
	}
	return q
}
