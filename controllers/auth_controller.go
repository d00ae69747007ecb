package controllers

import (
	"strings"
	"time"

	"github.com/Fatima-Benaya/2nConv-ELLW/entity"
	"github.com/Fatima-Benaya/2nConv-ELLW/pkg/resp"
	"github.com/Fatima-Benaya/2nConv-ELLW/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthController struct {
	DB        *gorm.DB
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthController(db *gorm.DB, secret string, ttl time.Duration) *AuthController {
	return &AuthController{DB: db, JWTSecret: secret, JWTTTL: ttl}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func publicUser(u *entity.User) gin.H {
	return gin.H{"id": u.ID, "name": u.Name, "email": u.Email}
}

// POST /api/auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}
	if len(strings.TrimSpace(req.Name)) < 2 {
		resp.BadRequest(c, "Name is required.")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		resp.BadRequest(c, "A valid email is required.")
		return
	}
	if len(req.Password) < 6 {
		resp.BadRequest(c, "Password must be at least 6 characters.")
		return
	}

	email := normalizeEmail(req.Email)
	var exist entity.User
	if err := a.DB.Where("email = ?", email).First(&exist).Error; err == nil {
		resp.Conflict(c, "Email is already registered.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c)
		return
	}

	user := entity.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashed),
		Role:     "customer",
	}
	if err := a.DB.Create(&user).Error; err != nil {
		resp.ServerError(c)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.Created(c, gin.H{"token": token, "user": publicUser(&user)})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid payload.")
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		resp.BadRequest(c, "A valid email is required.")
		return
	}
	if req.Password == "" {
		resp.BadRequest(c, "Password is required.")
		return
	}

	var user entity.User
	if err := a.DB.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error; err != nil {
		resp.Unauthorized(c, "Invalid credentials.")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "Invalid credentials.")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Role, a.JWTSecret, a.JWTTTL)
	if err != nil {
		resp.ServerError(c)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": publicUser(&user)})
}

// GET /api/auth/me (requires token)
func (a *AuthController) Me(c *gin.Context) {
	var user entity.User
	if err := a.DB.First(&user, utils.CurrentUserID(c)).Error; err != nil {
		resp.NotFound(c, "User not found.")
		return
	}
	resp.OK(c, publicUser(&user))
}
