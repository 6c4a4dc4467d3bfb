package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgUserRegistered = "User registered successfully"

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50" example:"alice"`
	Password string `json:"password" binding:"required,min=6,max=100" example:"s3cr3tpw"`
}

// loginRequest carries no binding rules: any credential mismatch,
// empty fields included, is answered with 401.
type loginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"s3cr3tpw"`
}

type registerResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"user_id"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// bindJSON binds the request body into dst and writes a 422 JSON on failure.
// Returns false if the request was already handled.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.validationFailed(c, err)
		return false
	}
	return true
}

// @Summary      Register a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Credentials"
// @Success      201   {object}  registerResponse
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /register [post]
func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	id, err := h.services.SignUp(c.Request.Context(), input.Username, input.Password)
	h.metrics.AuthAttempt("register", err == nil)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_up_failed", "username", input.Username, "err", err)
		}
		h.respondError(c, err, "auth_sign_up_error", "username", input.Username)
		return
	}

	c.JSON(http.StatusCreated, registerResponse{Message: msgUserRegistered, UserID: id})
}

// @Summary      Log in
// @Description  Returns a bearer token for the protected endpoints.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  tokenResponse
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSON(c, &input); !ok {
		return
	}

	token, err := h.services.GenerateToken(c.Request.Context(), input.Username, input.Password)
	h.metrics.AuthAttempt("login", err == nil)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_sign_in_failed", "username", input.Username, "err", err)
		}
		h.respondError(c, err, "auth_sign_in_error", "username", input.Username)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
