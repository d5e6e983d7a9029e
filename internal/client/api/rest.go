package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rentora/rentora/internal/client/models"
	"github.com/rentora/rentora/internal/client/repositories/metadata"
	"github.com/rentora/rentora/internal/logging"
)

// Well-known metadata keys owned by the session layer. The transport reads
// them on every request and deletes the session triple on a 401.
const (
	KeyAccessToken = "access_token"
	KeyTokenType   = "token_type"
	KeyUserData    = "user_data"
	KeyDeviceID    = "device_id"
)

const headerDeviceID = "X-Device-Id"

// Options configures the REST client.
type Options struct {
	// BaseURL is the versioned REST root, e.g. "http://localhost:8083/api/v1".
	BaseURL string
	// Timeout bounds each request; an expired timeout surfaces as a network
	// error.
	Timeout time.Duration
}

// REST is the resty-backed Client implementation.
type REST struct {
	http  *resty.Client
	store metadata.Repository
	log   logging.Logger
}

var _ Client = (*REST)(nil)

// NewREST builds a client against opts.BaseURL. The credential attached to
// outgoing requests is read from store at call time, so a token persisted by
// one component is immediately visible to all others.
func NewREST(opts Options, store metadata.Repository, log logging.Logger) *REST {
	r := &REST{store: store, log: log}

	c := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Content-Type", "application/json")
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}

	c.OnBeforeRequest(r.attachCredential)
	c.OnAfterResponse(r.invalidateOn401)

	r.http = c
	return r
}

// attachCredential is the request middleware stage: it reads the stored
// access token and device id and sets the corresponding headers when present.
func (r *REST) attachCredential(_ *resty.Client, req *resty.Request) error {
	ctx := req.Context()

	token, err := r.store.Get(ctx, KeyAccessToken)
	if err != nil {
		return fmt.Errorf("failed to read stored credential: %w", err)
	}
	if len(token) > 0 {
		req.SetHeader("Authorization", "Bearer "+string(token))
	}

	deviceID, err := r.store.Get(ctx, KeyDeviceID)
	if err != nil {
		return fmt.Errorf("failed to read device id: %w", err)
	}
	if len(deviceID) > 0 {
		req.SetHeader(headerDeviceID, string(deviceID))
	}

	return nil
}

// invalidateOn401 is the response middleware stage: any 401 wipes the
// persisted session before the normalized error reaches the caller, so no
// other component can act on a credential the server has rejected. Note that
// this fires on a 401 from any endpoint, matching the mobile client it
// replaces.
func (r *REST) invalidateOn401(_ *resty.Client, resp *resty.Response) error {
	if resp.StatusCode() != http.StatusUnauthorized {
		return nil
	}

	ctx := resp.Request.Context()
	for _, key := range []string{KeyAccessToken, KeyTokenType, KeyUserData} {
		if err := r.store.Delete(ctx, key); err != nil {
			r.log.Warn(ctx, "failed to clear stale credential", "key", key, "error", err)
		}
	}
	r.log.Debug(ctx, "cleared persisted session after 401", "path", resp.Request.URL)
	return nil
}

// EnsureDeviceID returns the persisted device identifier, generating and
// storing one on first run.
func EnsureDeviceID(ctx context.Context, store metadata.Repository) (string, error) {
	existing, err := store.Get(ctx, KeyDeviceID)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return string(existing), nil
	}

	id := uuid.NewString()
	if err := store.Set(ctx, KeyDeviceID, []byte(id)); err != nil {
		return "", err
	}
	return id, nil
}

func (r *REST) Login(ctx context.Context, creds models.LoginRequest) (*models.LoginResponse, error) {
	out := &models.LoginResponse{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(out).
		Post("/auth/login")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	out := &models.User{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(out).
		Post("/auth/register")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) Logout(ctx context.Context) error {
	resp, err := r.http.R().
		SetContext(ctx).
		Post("/auth/logout")
	return normalize(resp, err)
}

func (r *REST) Refresh(ctx context.Context) (*models.LoginResponse, error) {
	out := &models.LoginResponse{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(out).
		Post("/auth/refresh")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) CurrentUser(ctx context.Context) (*models.User, error) {
	out := &models.User{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetResult(out).
		Get("/auth/me")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) UpdateProfile(ctx context.Context, patch models.UserPatch) (*models.User, error) {
	out := &models.User{}
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(patch).
		SetResult(out).
		Put("/auth/profile")
	if err := normalize(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *REST) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(models.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}).
		Put("/auth/change-password")
	return normalize(resp, err)
}

func (r *REST) UpdateNotificationPreferences(ctx context.Context, prefs models.NotificationPreferences) error {
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(prefs).
		Put("/auth/notification-preferences")
	return normalize(resp, err)
}

func (r *REST) RegisterPushToken(ctx context.Context, token string) error {
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"token": token}).
		Post("/notifications/register-token")
	return normalize(resp, err)
}
