package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/configs"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/dto"
	"github.com/Nguyentung7193/HRM-PMA1011-BE/internals/features/users/model"
	helper "github.com/Nguyentung7193/HRM-PMA1011-BE/internals/helpers"
)

const tokenTTL = 24 * time.Hour

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

// 🟢 POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing model.UserModel
	err := ctrl.DB.Where("user_email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email is already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] Register lookup failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonServerError(c, "Failed to hash password", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleEmployee
	}

	user := model.UserModel{
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     role,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		log.Printf("[ERROR] Register create failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	return helper.JsonCreated(c, "Registration successful", dto.ToUserResponse(&user))
}

// 🟢 POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.Where("user_email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message for unknown email and wrong password
			return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
		}
		log.Printf("[ERROR] Login lookup failed: %v", err)
		return helper.JsonServerError(c, "Server error", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Incorrect email or password")
	}

	token, err := ctrl.issueToken(&user)
	if err != nil {
		log.Printf("[ERROR] Token signing failed: %v", err)
		return helper.JsonServerError(c, "Failed to issue token", err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(&user),
	})
}

func (ctrl *AuthController) issueToken(user *model.UserModel) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.UserID.String(),
		"email":    user.UserEmail,
		"is_admin": user.IsAdmin(),
		"iat":      now.Unix(),
		"exp":      now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}
