// package services defines interface Service for talking to the Training
// Partner REST backend
package services

import (
	"context"

	"github.com/trainpartner/tpx/internal/models"
)

// Service is the HTTP collaborator consumed by the forms and the program
// editor. Implementations handle transport, authentication headers and
// response decoding; callers own all in-memory state.
type Service interface {
	// Login exchanges credentials for an access token.
	// A 401 maps to [shared.ErrBadCredentials].
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Signup registers a new user and returns the created record.
	Signup(ctx context.Context, req SignupRequest) (*models.User, error)

	// CurrentUser fetches the record of the authenticated user.
	CurrentUser(ctx context.Context) (*models.User, error)

	// CheckUsernameAvailability reports whether the username is free.
	CheckUsernameAvailability(ctx context.Context, username string) (bool, error)

	// CheckEmailAvailability reports whether the email is unregistered.
	CheckEmailAvailability(ctx context.Context, email string) (bool, error)

	// CheckProgramTitleAvailability reports whether the title is unused by
	// the current user. programID scopes the check so a program keeps the
	// right to its own existing title while being edited.
	CheckProgramTitleAvailability(ctx context.Context, title string, programID int64) (bool, error)

	// Program retrieves an existing program by id.
	Program(ctx context.Context, id int64) (*models.Program, error)

	// SaveProgram creates or updates a program and returns the saved record.
	SaveProgram(ctx context.Context, program models.Program) (*models.Program, error)
}

// LoginRequest is the POST /authentication/login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
}

// SignupRequest is the POST /authentication/signup body.
type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// availabilityResponse is the body of the uniqueness-check endpoints.
type availabilityResponse struct {
	Available bool `json:"available"`
}
