package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOTPStore struct {
	mock.Mock
}

func (m *MockOTPStore) SaveCode(ctx context.Context, phone, code string) error {
	args := m.Called(ctx, phone, code)
	return args.Error(0)
}

func (m *MockOTPStore) GetCode(ctx context.Context, phone string) (string, error) {
	args := m.Called(ctx, phone)
	return args.String(0), args.Error(1)
}

func (m *MockOTPStore) DeleteCode(ctx context.Context, phone string) error {
	args := m.Called(ctx, phone)
	return args.Error(0)
}

func newTestAuthService(store *MockOTPStore) *AuthService {
	return NewAuthService(store, nil, "test-secret", OTPModeMock, 5*time.Minute)
}

func TestSendCodeMockMode(t *testing.T) {
	store := new(MockOTPStore)
	var savedCode string
	store.On("SaveCode", mock.Anything, "9876543210", mock.MatchedBy(func(code string) bool {
		savedCode = code
		return len(code) == 6 && strings.Trim(code, "0123456789") == ""
	})).Return(nil)

	svc := newTestAuthService(store)
	err := svc.SendCode(context.Background(), "9876543210")

	assert.NoError(t, err)
	assert.Len(t, savedCode, 6)
	store.AssertExpectations(t)
}

func TestSendCodeRejectsBadPhone(t *testing.T) {
	store := new(MockOTPStore)

	svc := newTestAuthService(store)

	err := svc.SendCode(context.Background(), "12345")
	assert.EqualError(t, err, "Phone number must be exactly 10 digits")

	err = svc.SendCode(context.Background(), "1234567890")
	assert.EqualError(t, err, "Phone number must start with 6, 7, 8, or 9")

	store.AssertNotCalled(t, "SaveCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyCodeIssuesToken(t *testing.T) {
	store := new(MockOTPStore)
	store.On("GetCode", mock.Anything, "9876543210").Return("123456", nil)
	store.On("DeleteCode", mock.Anything, "9876543210").Return(nil)

	svc := newTestAuthService(store)
	result, err := svc.VerifyCode(context.Background(), "9876543210", "123456")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.UserID, "user_"))
	assert.Equal(t, "9876543210", result.Phone)

	token, err := jwt.Parse(result.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, result.UserID, claims["sub"])
	assert.Equal(t, "9876543210", claims["phone"])

	store.AssertExpectations(t)
}

func TestVerifyCodeWrongCode(t *testing.T) {
	store := new(MockOTPStore)
	store.On("GetCode", mock.Anything, "9876543210").Return("123456", nil)

	svc := newTestAuthService(store)
	_, err := svc.VerifyCode(context.Background(), "9876543210", "654321")

	assert.EqualError(t, err, "invalid code")
	store.AssertNotCalled(t, "DeleteCode", mock.Anything, mock.Anything)
}

func TestVerifyCodeNoPendingCode(t *testing.T) {
	store := new(MockOTPStore)
	store.On("GetCode", mock.Anything, "9876543210").Return("", nil)

	svc := newTestAuthService(store)
	_, err := svc.VerifyCode(context.Background(), "9876543210", "123456")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no pending code")
}

func TestMockLogin(t *testing.T) {
	svc := newTestAuthService(new(MockOTPStore))

	result, err := svc.MockLogin(context.Background(), "9876543210")

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.UserID, "user_"))
	assert.NotEmpty(t, result.Token)

	_, err = svc.MockLogin(context.Background(), "12345")
	assert.Error(t, err)
}
