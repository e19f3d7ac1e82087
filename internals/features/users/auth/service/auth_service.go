package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"habitku_backend/internals/configs"
	"habitku_backend/internals/features/users/auth/dto"
	authModel "habitku_backend/internals/features/users/auth/model"
	helpers "habitku_backend/internals/helpers"
)

const accessTTLDefault = 7 * 24 * time.Hour

var validate = validator.New()

/* ==========================
   REGISTER
   POST /api/auth/register
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Cek email sudah dipakai atau belum
	var existing authModel.UserModel
	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Email already used")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := authModel.UserModel{
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		// dua register bersamaan bisa lolos cek di atas; unique index tetap jaga
		if isDuplicateKey(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email already used")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Register berhasil", dto.ToUserResponse(&user))
}

/* ==========================
   LOGIN
   POST /api/auth/login
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user authModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Bad credentials")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Bad credentials")
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	token, err := issueAccessToken(&user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helpers.JsonOK(c, "Login berhasil", dto.LoginResponse{Token: token})
}

/* ==========================
   Small Helpers
========================== */

func issueAccessToken(user *authModel.UserModel) (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    user.ID.String(),
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}
