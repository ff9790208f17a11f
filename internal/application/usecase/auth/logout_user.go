// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/cash-organizer/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for a logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserOutput represents the output of a logout.
type LogoutUserOutput struct {
	LoggedOut bool
}

// LogoutUserUseCase handles logout logic.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute invalidates the refresh token. Logging out with a token that is
// already invalid is not an error; the end state is the same.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) (*LogoutUserOutput, error) {
	if _, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return &LogoutUserOutput{LoggedOut: true}, nil
	}

	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	return &LogoutUserOutput{LoggedOut: true}, nil
}
