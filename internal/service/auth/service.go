package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/corestack-app/corestack-backend-go/internal/domain/auth"
	"github.com/corestack-app/corestack-backend-go/internal/domain/employee"
	"github.com/corestack-app/corestack-backend-go/internal/domain/user"
	"github.com/corestack-app/corestack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	jwtService jwt.Service
}

func NewAuthService(
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository:     userRepo,
		EmployeeRepository: employeeRepo,
		jwtService:         jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	found, err := s.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	if !found.IsActive {
		return auth.LoginResponse{}, user.ErrUserInactive
	}

	tokens, err := s.issueTokens(ctx, found)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	if err := s.UserRepository.UpdateLastLogin(ctx, found.ID); err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to update last login: %w", err)
	}

	return auth.LoginResponse{
		Tokens: tokens,
		User:   toUserResponse(found),
	}, nil
}

// Register implements auth.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.UserResponse{}, user.ErrEmailExists
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return auth.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toUserResponse(created), nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	resp := auth.MeResponse{User: toUserResponse(found)}

	profile, err := s.EmployeeRepository.GetByUserID(ctx, userID)
	if err != nil {
		// Admin accounts may have no employee profile.
		if errors.Is(err, employee.ErrProfileNotFound) {
			return resp, nil
		}
		return auth.MeResponse{}, fmt.Errorf("failed to load employee profile: %w", err)
	}

	resp.Employee = &auth.EmployeeSummary{
		ID:           profile.ID,
		EmployeeCode: profile.EmployeeCode,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		Position:     profile.Position,
		DepartmentID: profile.DepartmentID,
	}

	return resp, nil
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidRefreshToken
	}

	if !found.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return s.issueAccessToken(ctx, found)
}

// ChangePassword implements auth.AuthService.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.ErrInvalidToken
	}

	found, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return auth.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.UserRepository.UpdatePassword(ctx, userID, string(hash))
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	if accessToken == "" {
		return auth.ErrInvalidToken
	}
	s.jwtService.RevokeToken(accessToken)
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) issueAccessToken(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	var employeeID *string
	profile, err := s.EmployeeRepository.GetByUserID(ctx, u.ID)
	if err == nil {
		employeeID = &profile.ID
	} else if !errors.Is(err, employee.ErrProfileNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to load employee profile: %w", err)
	}

	access, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, employeeID, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:     access,
		AccessExpiresAt: accessExp,
		TokenType:       "Bearer",
	}, nil
}

func (s *AuthServiceImpl) issueTokens(ctx context.Context, u user.User) (auth.TokenResponse, error) {
	tokens, err := s.issueAccessToken(ctx, u)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	tokens.RefreshToken = refresh
	tokens.RefreshExpiresAt = refreshExp

	return tokens, nil
}

func toUserResponse(u user.User) auth.UserResponse {
	resp := auth.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
	if u.LastLogin != nil {
		lastLogin := u.LastLogin.Format(time.RFC3339)
		resp.LastLogin = &lastLogin
	}
	return resp
}
