package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"storefront-service/database"
	"storefront-service/logger"
	"storefront-service/validation"
)

const (
	OTPModeMock   = "mock"
	OTPModeTwilio = "twilio"
)

// LoginResult is what the rest of the app needs from auth: an opaque
// user id, the phone it belongs to, and a session token.
type LoginResult struct {
	UserID string `json:"user_id"`
	Phone  string `json:"phone"`
	Token  string `json:"token"`
}

type AuthService struct {
	otpStore  database.OTPStore
	notifier  *NotificationService
	jwtSecret []byte
	mode      string
	otpTTL    time.Duration
}

func NewAuthService(otpStore database.OTPStore, notifier *NotificationService, jwtSecret, mode string, otpTTL time.Duration) *AuthService {
	return &AuthService{
		otpStore:  otpStore,
		notifier:  notifier,
		jwtSecret: []byte(jwtSecret),
		mode:      mode,
		otpTTL:    otpTTL,
	}
}

// SendCode generates a 6-digit code for the phone number and delivers
// it over SMS. In mock mode the code is only logged.
func (s *AuthService) SendCode(ctx context.Context, phone string) error {
	if msg := validation.ValidatePhone(phone); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	code, err := generateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	if err := s.otpStore.SaveCode(ctx, phone, code); err != nil {
		return fmt.Errorf("failed to store code: %w", err)
	}

	if s.mode == OTPModeMock {
		logger.Log.Info("OTP issued (mock mode)",
			zap.String("phone", phone),
			zap.String("code", code),
		)
		return nil
	}

	minutes := int(s.otpTTL.Minutes())
	if err := s.notifier.OTPCode(ctx, "+91"+phone, code, minutes); err != nil {
		return fmt.Errorf("failed to send code: %w", err)
	}
	return nil
}

// VerifyCode checks the submitted code and, on a match, issues the
// user id and session token. Codes are single-use.
func (s *AuthService) VerifyCode(ctx context.Context, phone, code string) (*LoginResult, error) {
	stored, err := s.otpStore.GetCode(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to look up code: %w", err)
	}
	if stored == "" {
		return nil, fmt.Errorf("no pending code for this number, request a new one")
	}
	if stored != code {
		return nil, fmt.Errorf("invalid code")
	}

	if err := s.otpStore.DeleteCode(ctx, phone); err != nil {
		logger.Log.Warn("Failed to delete used OTP code", zap.String("phone", phone), zap.Error(err))
	}

	return s.login(phone)
}

// MockLogin completes a local login without OTP verification.
func (s *AuthService) MockLogin(ctx context.Context, phone string) (*LoginResult, error) {
	if msg := validation.ValidatePhone(phone); msg != "" {
		return nil, fmt.Errorf("%s", msg)
	}
	return s.login(phone)
}

func (s *AuthService) login(phone string) (*LoginResult, error) {
	userID := fmt.Sprintf("user_%d", time.Now().UnixNano())

	claims := jwt.MapClaims{
		"sub":   userID,
		"phone": phone,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &LoginResult{
		UserID: userID,
		Phone:  phone,
		Token:  signed,
	}, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
