package mocks

import "context"

// MockLoginService mocks the email login flow used by the auth handler.
type MockLoginService struct {
	// LoginFn allows test cases to mock the Login behavior
	LoginFn func(ctx context.Context, email string) (string, error)

	// Default values used when LoginFn isn't set
	Token string
	Err   error
}

// Login returns LoginFn's result, or the default Token and Err.
func (m *MockLoginService) Login(ctx context.Context, email string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, email)
	}
	return m.Token, m.Err
}
