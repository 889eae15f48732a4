package editor

import (
	"context"

	"github.com/trainpartner/tpx/internal/models"
	"github.com/trainpartner/tpx/internal/services"
	"github.com/trainpartner/tpx/internal/validate"
	"golang.org/x/time/rate"
)

// checkRateLimit caps uniqueness round-trips per second. Checks fire on
// blur, so the limiter only matters under scripted input.
const checkRateLimit = 5.0

// Outcome is the result of an availability round-trip. Value records the
// input the check was issued for; [Apply] uses it to discard outcomes that
// arrive after the field has moved on.
type Outcome struct {
	Value   string
	Status  models.ValidateStatus
	Message string
}

// Checker orchestrates server-side uniqueness checks for username, email
// and program title fields.
//
// AdvisoryFailures preserves the upstream policy of treating transport
// failures as non-blocking: the check is advisory and a backend outage must
// not lock users out of submitting. Setting it to false turns transport
// failures into field errors instead. See DESIGN.md for the open question
// around this default.
type Checker struct {
	svc              services.Service
	limiter          *rate.Limiter
	AdvisoryFailures bool
}

// NewChecker creates a [Checker] over the given service collaborator.
func NewChecker(svc services.Service) *Checker {
	return &Checker{
		svc:              svc,
		limiter:          rate.NewLimiter(rate.Limit(checkRateLimit), 1),
		AdvisoryFailures: true,
	}
}

// Input records a keystroke edit: the field takes the new value and the
// verdict of its format rule. Format rules are cheap and rerun on every
// keystroke; no result is cached.
func Input(f *models.FieldState, value string, rule validate.Rule) {
	v := rule(value)
	f.Value = value
	f.Status = v.Status
	f.Message = v.Message
}

// Begin starts an availability check for the field, running the format rule
// first. On a format error the field takes the error and no network call
// should be made. Otherwise the field enters StatusValidating (the in-flight
// marker for the UI) and Begin reports true: the caller should issue the
// round-trip for the field's current value and feed the [Outcome] to [Apply].
func Begin(f *models.FieldState, rule validate.Rule) bool {
	v := rule(f.Value)
	if v.Status == models.StatusError {
		f.Status = v.Status
		f.Message = v.Message
		return false
	}

	f.Status = models.StatusValidating
	f.Message = ""
	return true
}

// Apply commits an outcome to the field unless the field's value has changed
// since the check began; stale outcomes are dropped silently. Reports
// whether the outcome was applied.
func Apply(f *models.FieldState, o Outcome) bool {
	if f.Value != o.Value {
		return false
	}
	f.Status = o.Status
	f.Message = o.Message
	return true
}

// Username performs the uniqueness round-trip for a username value.
func (c *Checker) Username(ctx context.Context, value string) Outcome {
	return c.check(ctx, value, validate.DuplicateUsername, func(ctx context.Context) (bool, error) {
		return c.svc.CheckUsernameAvailability(ctx, value)
	})
}

// Email performs the uniqueness round-trip for an email value.
func (c *Checker) Email(ctx context.Context, value string) Outcome {
	return c.check(ctx, value, validate.DuplicateEmail, func(ctx context.Context) (bool, error) {
		return c.svc.CheckEmailAvailability(ctx, value)
	})
}

// ProgramTitle performs the uniqueness round-trip for a program title,
// scoped so the program identified by programID keeps its own title.
func (c *Checker) ProgramTitle(ctx context.Context, value string, programID int64) Outcome {
	return c.check(ctx, value, validate.DuplicateProgramTitle, func(ctx context.Context) (bool, error) {
		return c.svc.CheckProgramTitleAvailability(ctx, value, programID)
	})
}

func (c *Checker) check(ctx context.Context, value, duplicateMsg string, fn func(context.Context) (bool, error)) Outcome {
	if err := c.limiter.Wait(ctx); err != nil {
		return c.failure(value)
	}

	available, err := fn(ctx)
	if err != nil {
		return c.failure(value)
	}

	if !available {
		return Outcome{Value: value, Status: models.StatusError, Message: duplicateMsg}
	}
	return Outcome{Value: value, Status: models.StatusSuccess}
}

// failure maps a transport failure according to the advisory policy: either
// a silent pass or a retryable field error.
func (c *Checker) failure(value string) Outcome {
	if c.AdvisoryFailures {
		return Outcome{Value: value, Status: models.StatusSuccess}
	}
	return Outcome{Value: value, Status: models.StatusError, Message: validate.Undefined}
}
