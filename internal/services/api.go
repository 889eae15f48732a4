// HTTP implementation of [Service] for the Training Partner backend
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/shared"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "http://localhost:8080/api"

// APIService implements [Service] over JSON/HTTP. The access token, when
// present, is sent as an Authorization: Bearer header on every request.
type APIService struct {
	baseURL    string
	httpClient *http.Client
	token      *oauth2.Token
}

// NewAPIService creates a new API service for the given base URL.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// SetToken installs the bearer token used for authenticated requests.
func (a *APIService) SetToken(token *oauth2.Token) {
	a.token = token
}

// ClearToken drops the bearer token; subsequent requests are anonymous.
func (a *APIService) ClearToken() {
	a.token = nil
}

// Authenticated reports whether a bearer token is installed.
func (a *APIService) Authenticated() bool {
	return a.token != nil && a.token.AccessToken != ""
}

// do performs a JSON request against the backend. body and result may be
// nil. Non-2xx statuses return [shared.ErrAPIRequest] wrapped with the
// status code.
func (a *APIService) do(ctx context.Context, method, path string, body, result any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if a.Authenticated() {
		req.Header.Set("Authorization", "Bearer "+a.token.AccessToken)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// Login exchanges credentials for an access token. A 401 is reported as
// [shared.ErrBadCredentials]; every other failure keeps the generic mapping.
func (a *APIService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/authentication/login", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, shared.ErrBadCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var login LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &login, nil
}

// Signup registers a new user.
func (a *APIService) Signup(ctx context.Context, req SignupRequest) (*models.User, error) {
	var user models.User
	if err := a.do(ctx, http.MethodPost, "/authentication/signup", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the authenticated user's record.
func (a *APIService) CurrentUser(ctx context.Context) (*models.User, error) {
	if !a.Authenticated() {
		return nil, shared.ErrNotAuthenticated
	}

	var user models.User
	if err := a.do(ctx, http.MethodGet, "/user/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckUsernameAvailability reports whether the username is free.
func (a *APIService) CheckUsernameAvailability(ctx context.Context, username string) (bool, error) {
	path := "/user/checkUsernameAvailability?username=" + url.QueryEscape(username)
	var avail availabilityResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &avail); err != nil {
		return false, err
	}
	return avail.Available, nil
}

// CheckEmailAvailability reports whether the email is unregistered.
func (a *APIService) CheckEmailAvailability(ctx context.Context, email string) (bool, error) {
	path := "/user/checkEmailAvailability?email=" + url.QueryEscape(email)
	var avail availabilityResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &avail); err != nil {
		return false, err
	}
	return avail.Available, nil
}

// CheckProgramTitleAvailability reports whether the title is unused,
// ignoring the program identified by programID.
func (a *APIService) CheckProgramTitleAvailability(ctx context.Context, title string, programID int64) (bool, error) {
	path := "/programs/checkProgramTitleAvailability?programTitle=" + url.QueryEscape(title) +
		"&programId=" + strconv.FormatInt(programID, 10)
	var avail availabilityResponse
	if err := a.do(ctx, http.MethodGet, path, nil, &avail); err != nil {
		return false, err
	}
	return avail.Available, nil
}

// Program retrieves a program by id.
func (a *APIService) Program(ctx context.Context, id int64) (*models.Program, error) {
	var program models.Program
	if err := a.do(ctx, http.MethodGet, fmt.Sprintf("/programs/%d", id), nil, &program); err != nil {
		return nil, err
	}
	return &program, nil
}

// SaveProgram creates or updates a program. The payload carries only wire
// fields; derived columns like total repeats are recomputed client-side and
// never serialized.
func (a *APIService) SaveProgram(ctx context.Context, program models.Program) (*models.Program, error) {
	var saved models.Program
	if err := a.do(ctx, http.MethodPost, "/programs", program, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

var _ Service = (*APIService)(nil)
