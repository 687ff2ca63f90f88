package handler

import (
	"errors"
	"net/http"

	"spandan/internal/domain"
	"spandan/internal/middleware"
	"spandan/internal/models"
	"spandan/internal/repository"
	"spandan/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler manages admin accounts. Routes are ADMIN-only; users are never
// deleted, only edited.
type UserHandler struct {
	repo     *repository.UserRepository
	recorder *service.Recorder
}

func NewUserHandler(repo *repository.UserRepository, recorder *service.Recorder) *UserHandler {
	return &UserHandler{repo: repo, recorder: recorder}
}

var validRoles = map[string]bool{
	domain.RoleAdmin:  true,
	domain.RoleEditor: true,
	domain.RoleViewer: true,
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !validRoles[req.Role] {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown role"})
		return
	}
	exists, err := h.repo.EmailExists(req.Email, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	if exists {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	u := &models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := h.repo.Create(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionCreate, "user", u.ID, gin.H{"email": u.Email, "role": u.Role})
	c.JSON(http.StatusCreated, u)
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	u, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		if !validRoles[*req.Role] {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "unknown role"})
			return
		}
		if u.IsAdmin() && *req.Role != domain.RoleAdmin {
			admins, err := h.repo.CountByRole(domain.RoleAdmin)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
				return
			}
			if admins <= 1 {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cannot demote the last admin"})
				return
			}
		}
		u.Role = *req.Role
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "password must be at least 8 characters"})
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
			return
		}
		u.PasswordHash = string(hash)
	}
	if err := h.repo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	h.recorder.Record(middleware.GetUserID(c), domain.ActionUpdate, "user", u.ID, gin.H{"email": u.Email, "role": u.Role})
	c.JSON(http.StatusOK, u)
}
