package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/petroenergy/petrodash/internal/domain/audit"
	"github.com/petroenergy/petrodash/internal/domain/identity"
	"github.com/petroenergy/petrodash/internal/domain/shared"
	"github.com/petroenergy/petrodash/internal/infrastructure/auth"
)

// AuthService handles authentication operations.
type AuthService struct {
	accountRepo identity.AccountRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	auditor     audit.Recorder
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	accountRepo identity.AccountRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	auditor audit.Recorder,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		auditor:     auditor,
		logger:      logger,
	}
}

// Login authenticates an account and returns a token pair.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	account, err := s.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Account not found during login", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !account.IsActive() {
		s.logger.Warn("Login attempt for deactivated account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account has been deactivated")
	}

	if !account.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		AccountID:    account.AccountID,
		Email:        account.Email,
		Role:         string(account.Role),
		PowerPlantID: account.PowerPlantID,
		CompanyID:    account.CompanyID,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	s.auditor.Record(ctx, audit.NewEntry(
		account.AccountID, "account", account.AccountID, audit.ActionLogin,
		"", "", "logged in from "+input.IP))

	s.logger.Info("Account logged in",
		zap.String("account_id", account.AccountID),
		zap.String("role", string(account.Role)))

	result := &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		Account:               accountInfo(account),
	}
	if profile, err := s.accountRepo.FindProfile(ctx, account.AccountID); err == nil {
		result.Account.FullName = profile.FullName()
	}
	return result, nil
}

// RefreshToken rotates a refresh token, re-reading the account so role
// or site changes take effect on the new pair.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	invalidated, err := s.blacklist.IsAccountTokenInvalidated(ctx, claims.AccountID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("Failed to check account token invalidation", zap.Error(err))
	} else if invalidated {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Token has been revoked")
	}

	account, err := s.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		s.logger.Warn("Account not found during token refresh", zap.String("account_id", claims.AccountID))
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Account not found")
	}
	if !account.IsActive() {
		s.logger.Warn("Token refresh for deactivated account", zap.String("account_id", account.AccountID))
		return nil, shared.NewDomainError("ACCOUNT_DEACTIVATED", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, auth.GenerateTokenInput{
		AccountID:    account.AccountID,
		Email:        account.Email,
		Role:         string(account.Role),
		PowerPlantID: account.PowerPlantID,
		CompanyID:    account.CompanyID,
	})
	if err != nil {
		s.logger.Warn("Token refresh failed", zap.Error(err))
		return nil, mapTokenError(err)
	}

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout blacklists the presented token for its remaining lifetime and
// appends a logout audit entry.
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	if input.TokenJTI != "" && input.TokenTTL > 0 {
		if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
			s.logger.Error("Failed to blacklist token on logout",
				zap.String("account_id", input.AccountID), zap.Error(err))
			return shared.NewDomainError("INTERNAL_ERROR", "Failed to complete logout")
		}
	}

	s.auditor.Record(ctx, audit.NewEntry(
		input.AccountID, "account", input.AccountID, audit.ActionLogout, "", "", "logged out"))

	s.logger.Info("Account logged out", zap.String("account_id", input.AccountID))
	return nil
}

// Validate reports whether an access token is usable: well formed,
// unexpired, not blacklisted, and belonging to an active account.
func (s *AuthService) Validate(ctx context.Context, tokenString string) bool {
	claims, err := s.jwtService.ValidateAccessToken(tokenString)
	if err != nil {
		return false
	}

	if jti := claims.ID; jti != "" {
		blacklisted, err := s.blacklist.IsBlacklisted(ctx, jti)
		if err != nil {
			s.logger.Error("Failed to check token blacklist", zap.Error(err))
		} else if blacklisted {
			return false
		}
	}

	invalidated, err := s.blacklist.IsAccountTokenInvalidated(ctx, claims.AccountID, claims.GetIssuedAtTime())
	if err != nil {
		s.logger.Error("Failed to check account token invalidation", zap.Error(err))
	} else if invalidated {
		return false
	}

	account, err := s.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		return false
	}
	return account.IsActive()
}

// CurrentAccount returns the account and profile behind a set of claims.
func (s *AuthService) CurrentAccount(ctx context.Context, accountID string) (*AccountDetail, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	detail := &AccountDetail{
		AccountInfo: accountInfo(account),
		DateCreated: account.DateCreated,
		DateUpdated: account.DateUpdated,
	}
	if profile, err := s.accountRepo.FindProfile(ctx, accountID); err == nil {
		detail.FullName = profile.FullName()
		detail.EmpID = profile.EmpID
		detail.ContactNumber = profile.ContactNumber
		detail.Address = profile.Address
		detail.Birthdate = profile.Birthdate
		detail.Gender = profile.Gender
	}
	return detail, nil
}

func accountInfo(account *identity.Account) AccountInfo {
	return AccountInfo{
		AccountID:    account.AccountID,
		Email:        account.Email,
		Role:         string(account.Role),
		RoleName:     account.Role.Name(),
		PowerPlantID: account.PowerPlantID,
		CompanyID:    account.CompanyID,
		Status:       string(account.Status),
	}
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case errors.Is(err, auth.ErrMaxRefreshExceeded):
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType), errors.Is(err, auth.ErrInvalidClaims):
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	default:
		return shared.NewDomainError("TOKEN_ERROR", "Failed to process token")
	}
}
