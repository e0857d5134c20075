package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dvasic/resumecraft-api/internal/middleware"
	"github.com/dvasic/resumecraft-api/internal/models"
	"github.com/dvasic/resumecraft-api/internal/services"
	"github.com/dvasic/resumecraft-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

type AuthHandler struct {
	userService  UserServiceInterface
	tokenService TokenServiceInterface
	jwtService   JWTServiceInterface
	logger       *zap.Logger
}

func NewAuthHandler(
	userService UserServiceInterface,
	tokenService TokenServiceInterface,
	jwtService JWTServiceInterface,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
		jwtService:   jwtService,
		logger:       logger,
	}
}

func (h *AuthHandler) Register(c *drift.Context) {
	var req dto.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	ctx := context.Background()

	user, err := h.userService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			_ = c.JSON(http.StatusBadRequest, dto.Fail("User already exists with this email"))
			return
		}
		h.logger.Error("failed to register user", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error during registration"))
		return
	}

	h.issueTokens(c, ctx, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	ctx := context.Background()

	user, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			_ = c.JSON(http.StatusUnauthorized, dto.Fail("Invalid credentials"))
			return
		}
		h.logger.Error("failed to authenticate user", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error during login"))
		return
	}

	h.issueTokens(c, ctx, http.StatusOK, user)
}

// issueTokens generates a token pair, persists the refresh token hash and
// writes the auth response.
func (h *AuthHandler) issueTokens(c *drift.Context, ctx context.Context, status int, user *models.User) {
	tokenPair, err := h.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		h.logger.Error("failed to generate tokens", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate tokens"))
		return
	}

	tokenHash := services.HashToken(tokenPair.RefreshToken)
	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(ctx, user.ID, tokenHash, expiresAt); err != nil {
		h.logger.Error("failed to store refresh token", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to store refresh token"))
		return
	}

	_ = c.JSON(status, dto.OK(dto.AuthResponse{
		User:         user,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}))
}

func (h *AuthHandler) Me(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	user, err := h.userService.GetByID(context.Background(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			_ = c.JSON(http.StatusNotFound, dto.Fail("User not found"))
			return
		}
		h.logger.Error("failed to fetch user", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while fetching user"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(user))
}

func (h *AuthHandler) UpdateProfile(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	user, err := h.userService.UpdateProfile(context.Background(), userID, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			_ = c.JSON(http.StatusBadRequest, dto.Fail("User already exists with this email"))
			return
		}
		if errors.Is(err, services.ErrUserNotFound) {
			_ = c.JSON(http.StatusNotFound, dto.Fail("User not found"))
			return
		}
		h.logger.Error("failed to update profile", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while updating profile"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(user))
}

func (h *AuthHandler) ChangePassword(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if errs := dto.Validate(req); errs != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Invalid(errs))
		return
	}

	ctx := context.Background()

	err := h.userService.ChangePassword(ctx, userID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			_ = c.JSON(http.StatusUnauthorized, dto.Fail("Current password is incorrect"))
			return
		}
		h.logger.Error("failed to change password", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while changing password"))
		return
	}

	// A password change invalidates every outstanding session.
	if err := h.tokenService.RevokeAllUserTokens(ctx, userID); err != nil {
		h.logger.Error("failed to revoke tokens", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Server error while changing password"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.Msg("Password updated successfully"))
}

func (h *AuthHandler) RefreshToken(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if req.RefreshToken == "" {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("refreshToken is required"))
		return
	}

	userID, err := h.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Invalid refresh token"))
		return
	}

	tokenHash := services.HashToken(req.RefreshToken)
	ctx := context.Background()

	storedUserID, err := h.tokenService.ValidateRefreshToken(ctx, tokenHash)
	if err != nil || storedUserID != userID {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Refresh token not found or expired"))
		return
	}

	user, err := h.userService.GetByID(ctx, userID)
	if err != nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("User not found"))
		return
	}

	if err := h.tokenService.RevokeRefreshToken(ctx, tokenHash); err != nil {
		h.logger.Error("failed to revoke old token", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to revoke old token"))
		return
	}

	tokenPair, err := h.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		h.logger.Error("failed to generate tokens", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to generate tokens"))
		return
	}

	newTokenHash := services.HashToken(tokenPair.RefreshToken)
	expiresAt := time.Now().Add(h.jwtService.RefreshExpiry())
	if err := h.tokenService.StoreRefreshToken(ctx, user.ID, newTokenHash, expiresAt); err != nil {
		h.logger.Error("failed to store refresh token", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to store refresh token"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.OK(dto.TokenResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    tokenPair.ExpiresIn,
	}))
}

// Logout revokes the presented refresh token. Always answers OK so clients
// can clear local state regardless.
func (h *AuthHandler) Logout(c *drift.Context) {
	var req dto.RefreshTokenRequest
	if err := c.BindJSON(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if req.RefreshToken != "" {
		tokenHash := services.HashToken(req.RefreshToken)
		_ = h.tokenService.RevokeRefreshToken(context.Background(), tokenHash)
	}

	_ = c.JSON(http.StatusOK, dto.Msg("Logged out successfully"))
}

func (h *AuthHandler) LogoutAll(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		_ = c.JSON(http.StatusUnauthorized, dto.Fail("Not authenticated"))
		return
	}

	if err := h.tokenService.RevokeAllUserTokens(context.Background(), userID); err != nil {
		h.logger.Error("failed to revoke tokens", zap.Error(err))
		_ = c.JSON(http.StatusInternalServerError, dto.Fail("Failed to revoke tokens"))
		return
	}

	_ = c.JSON(http.StatusOK, dto.Msg("Logged out from all devices"))
}
