// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/services"
)

// MockService is a test double for [services.Service]. Each method delegates
// to the matching function field when set and returns zero values otherwise.
type MockService struct {
	LoginFn             func(ctx context.Context, req services.LoginRequest) (*services.LoginResponse, error)
	SignupFn            func(ctx context.Context, req services.SignupRequest) (*models.User, error)
	CurrentUserFn       func(ctx context.Context) (*models.User, error)
	CheckUsernameFn     func(ctx context.Context, username string) (bool, error)
	CheckEmailFn        func(ctx context.Context, email string) (bool, error)
	CheckProgramTitleFn func(ctx context.Context, title string, programID int64) (bool, error)
	ProgramFn           func(ctx context.Context, id int64) (*models.Program, error)
	SaveProgramFn       func(ctx context.Context, program models.Program) (*models.Program, error)

	// CheckCalls counts availability round-trips across all three fields.
	CheckCalls int
}

func (m *MockService) Login(ctx context.Context, req services.LoginRequest) (*services.LoginResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return &services.LoginResponse{}, nil
}

func (m *MockService) Signup(ctx context.Context, req services.SignupRequest) (*models.User, error) {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, req)
	}
	return &models.User{}, nil
}

func (m *MockService) CurrentUser(ctx context.Context) (*models.User, error) {
	if m.CurrentUserFn != nil {
		return m.CurrentUserFn(ctx)
	}
	return &models.User{}, nil
}

func (m *MockService) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	m.CheckCalls++
	if m.CheckUsernameFn != nil {
		return m.CheckUsernameFn(ctx, username)
	}
	return true, nil
}

func (m *MockService) CheckEmailAvailability(ctx context.Context, email string) (bool, error) {
	m.CheckCalls++
	if m.CheckEmailFn != nil {
		return m.CheckEmailFn(ctx, email)
	}
	return true, nil
}

func (m *MockService) CheckProgramTitleAvailability(ctx context.Context, title string, programID int64) (bool, error) {
	m.CheckCalls++
	if m.CheckProgramTitleFn != nil {
		return m.CheckProgramTitleFn(ctx, title, programID)
	}
	return true, nil
}

func (m *MockService) Program(ctx context.Context, id int64) (*models.Program, error) {
	if m.ProgramFn != nil {
		return m.ProgramFn(ctx, id)
	}
	return &models.Program{ID: id}, nil
}

func (m *MockService) SaveProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	if m.SaveProgramFn != nil {
		return m.SaveProgramFn(ctx, program)
	}
	saved := program
	return &saved, nil
}

var _ services.Service = (*MockService)(nil)

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading a response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

var _ io.Writer = (*FWriter)(nil)
