// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/cash-organizer/backend/internal/application/adapter"
	domainerror "github.com/cash-organizer/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for a password reset request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a password reset request.
// The output is identical whether or not the email belongs to an account.
type ForgotPasswordOutput struct {
	Requested bool
}

// ForgotPasswordUseCase issues a password reset token and mails it to the
// account holder.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	resetURLBase      string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	resetURLBase string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		resetURLBase:      resetURLBase,
	}
}

// Execute requests a password reset. Unknown emails succeed without sending
// anything so the endpoint cannot be used to probe for accounts.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if !emailRegex.MatchString(email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return &ForgotPasswordOutput{Requested: true}, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	token, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s?token=%s", uc.resetURLBase, token.Token)

	result, err := uc.emailSender.Send(ctx, adapter.SendEmailInput{
		To:      user.Email,
		Subject: "Reset your Cash Organizer password",
		HTML: fmt.Sprintf(
			"<p>Hi %s,</p><p>Follow <a href=%q>this link</a> to choose a new password. The link expires in one hour.</p><p>If you did not request a reset, you can ignore this email.</p>",
			user.Username, resetURL,
		),
		Text: fmt.Sprintf(
			"Hi %s,\n\nOpen %s to choose a new password. The link expires in one hour.\n\nIf you did not request a reset, you can ignore this email.\n",
			user.Username, resetURL,
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send reset email: %w", err)
	}

	slog.Info("password reset email sent",
		slog.String("user_id", user.ID.String()),
		slog.String("provider_id", result.ProviderID),
	)

	return &ForgotPasswordOutput{Requested: true}, nil
}
