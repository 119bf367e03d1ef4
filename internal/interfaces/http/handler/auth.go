package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/petroenergy/petrodash/internal/application/identity"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *identity.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes registers the auth routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.RefreshToken)
		auth.POST("/logout", h.Logout)
		auth.POST("/validate", h.Validate)
		auth.GET("/me", h.Me)
	}
}

// Login godoc
// @Summary      Account login
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} dto.Response{data=LoginResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), identity.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		IP:       c.ClientIP(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token: TokenResponse{
			AccessToken:           result.AccessToken,
			RefreshToken:          result.RefreshToken,
			AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
			TokenType:             result.TokenType,
		},
		Account: accountResponse(result.Account),
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Description  Rotate the token pair using a refresh token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RefreshTokenRequest true "Refresh token"
// @Success      200 {object} dto.Response{data=TokenResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.RefreshToken(c.Request.Context(), identity.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, TokenResponse{
		AccessToken:           result.AccessToken,
		RefreshToken:          result.RefreshToken,
		AccessTokenExpiresAt:  result.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: result.RefreshTokenExpiresAt,
		TokenType:             result.TokenType,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the presented access token for its remaining lifetime
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	err := h.authService.Logout(c.Request.Context(), identity.LogoutInput{
		AccountID: claims.AccountID,
		TokenJTI:  claims.ID,
		TokenTTL:  claims.GetRemainingTTL(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Logged out"})
}

// Validate godoc
// @Summary      Validate a token
// @Description  Report whether the presented token is still usable. Always returns 200.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ValidateTokenRequest true "Token to check"
// @Success      200 {object} dto.Response{data=ValidateTokenResponse}
// @Router       /auth/validate [post]
func (h *AuthHandler) Validate(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Success(c, ValidateTokenResponse{Valid: false})
		return
	}

	valid := h.authService.Validate(c.Request.Context(), req.Token)
	h.Success(c, ValidateTokenResponse{Valid: valid})
}

// Me godoc
// @Summary      Current account
// @Description  Return the authenticated account with its profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=AccountDetailResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	accountID := middleware.GetAccountID(c)
	if accountID == "" {
		h.Unauthorized(c, "Authentication required")
		return
	}

	detail, err := h.authService.CurrentAccount(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, accountDetailResponse(*detail))
}

func accountResponse(info identity.AccountInfo) AccountResponse {
	return AccountResponse{
		AccountID:    info.AccountID,
		Email:        info.Email,
		Role:         info.Role,
		RoleName:     info.RoleName,
		PowerPlantID: info.PowerPlantID,
		CompanyID:    info.CompanyID,
		Status:       info.Status,
		FullName:     info.FullName,
	}
}

func accountDetailResponse(detail identity.AccountDetail) AccountDetailResponse {
	return AccountDetailResponse{
		AccountResponse: accountResponse(detail.AccountInfo),
		EmpID:           detail.EmpID,
		ContactNumber:   detail.ContactNumber,
		Address:         detail.Address,
		Birthdate:       detail.Birthdate,
		Gender:          detail.Gender,
		DateCreated:     detail.DateCreated,
		DateUpdated:     detail.DateUpdated,
	}
}
