package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"dailytoon-backend/internal/config"
	"dailytoon-backend/internal/database"
	"dailytoon-backend/internal/models"
)

type AuthHandler struct {
	dbClient *database.Client
	config   *config.Config
	log      *zap.Logger
}

func NewAuthHandler(dbClient *database.Client, cfg *config.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		dbClient: dbClient,
		config:   cfg,
		log:      log,
	}
}

// Signup godoc
// @Summary     Register a new user
// @Description Creates a user account with email, password and nickname
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.SignupRequest true "Signup payload"
// @Success     201 {object} models.SignupResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	if _, err := h.dbClient.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to hash password"})
		return
	}

	user, err := h.dbClient.CreateUser(req.Email, string(hash), req.Nickname)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to create user",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("user registered", zap.Int64("user_id", user.UserID))

	c.JSON(http.StatusCreated, models.SignupResponse{
		Message: "signup successful",
		UserID:  user.UserID,
	})
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns a bearer token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Login payload"
// @Success     200 {object} models.LoginResponse
// @Failure     400 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request", Message: err.Error()})
		return
	}

	user, err := h.dbClient.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid email or password"})
		return
	}

	token, err := h.issueToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Nickname:    user.Nickname,
	})
}

func (h *AuthHandler) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(h.config.AccessTokenMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
