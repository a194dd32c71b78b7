package controllers

import (
	"errors"
	"net/http"

	"github.com/sorteo-loteria/sorteo-backend/lottery"
	"github.com/sorteo-loteria/sorteo-backend/models"
	"github.com/sorteo-loteria/sorteo-backend/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthController handles registration and login.
type AuthController struct {
	users repository.UserRepository
}

func NewAuthController(users repository.UserRepository) *AuthController {
	return &AuthController{users: users}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (ctl *AuthController) Register(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password required"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	user := models.User{Username: req.Username, PasswordHash: string(hash)}
	if err := ctl.users.Create(&user); err != nil {
		if errors.Is(err, lottery.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User registered successfully"})
}

// Login authenticates a user and returns their id.
func (ctl *AuthController) Login(c *gin.Context) {
	var req credentials
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username and password required"})
		return
	}

	user, err := ctl.users.FindByUsername(req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Database error"})
		return
	}
	if user != nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) == nil {
			c.JSON(http.StatusOK, gin.H{"success": true, "user_id": user.ID, "message": "Login successful"})
			return
		}
	}

	c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid username or password"})
}
