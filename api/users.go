package api

import (
	"net/http"

	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/daehyun-dev/skyreserve/internal/service/users"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service users.UserUseCase
}

type registerRequest struct {
	UserID         string `json:"user_id" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Phone          string `json:"phone"`
}

type loginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
	Phone          string `json:"phone"`
	Mileage        int    `json:"mileage"`
}

func NewUserHandler(service users.UserUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.RouterGroup) {
	router.POST("/users", h.register)
	router.POST("/login", h.login)
	router.GET("/users/:id", h.profile)
}

func (h *UserHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.service.Register(c.Request.Context(), domain.User{
		UserID:         req.UserID,
		Password:       req.Password,
		Name:           req.Name,
		PassportNumber: req.PassportNumber,
		Phone:          req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registered": true})
}

func (h *UserHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHandler) profile(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{
		UserID:         u.UserID,
		Name:           u.Name,
		PassportNumber: u.PassportNumber,
		Phone:          u.Phone,
		Mileage:        u.Mileage,
	}
}
