package models

// ValidateStatus is the tri-state (plus in-flight) verdict of the field
// validation pipeline.
type ValidateStatus int

const (
	// StatusNone means the value passed format checks but still awaits a
	// uniqueness check before the field counts as valid.
	StatusNone ValidateStatus = iota
	// StatusValidating marks an in-flight availability request.
	StatusValidating
	StatusSuccess
	StatusError
)

// String returns the status name as used by form rendering.
func (s ValidateStatus) String() string {
	switch s {
	case StatusValidating:
		return "validating"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "none"
	}
}

// FieldState holds the current value of a form field together with its
// validation verdict. Message is meaningful only when Status is StatusError.
//
// Status must only change through the validation pipeline (format rules and
// availability checks), never directly from raw input.
type FieldState struct {
	Value   string
	Status  ValidateStatus
	Message string
}

// Valid reports whether the field has fully passed validation.
func (f FieldState) Valid() bool {
	return f.Status == StatusSuccess
}

// Exercise is one scheduled exercise row of a program.
//
// Key is a locally-unique, monotonically-increasing integer assigned at row
// creation. It identifies the row across reorders and is never reused, even
// after deletion. It is not part of the wire format.
type Exercise struct {
	Key              int    `json:"-"`
	ID               int64  `json:"id"`
	Day              int    `json:"day"`
	Name             string `json:"exercise"`
	Series           int    `json:"series"`
	RepeatsPerSeries int    `json:"repeatsPerSeries"`
}

// TotalRepeats is the derived series * repeatsPerSeries column. It is
// recomputed on every render and never persisted; negative factors clamp
// to 0 so the display can't underflow.
func (e Exercise) TotalRepeats() int {
	if e.Series <= 0 || e.RepeatsPerSeries <= 0 {
		return 0
	}
	return e.Series * e.RepeatsPerSeries
}

// Program is a titled, ordered collection of exercise rows. Exercise order
// is meaningful (workout day ordering). ID 0 means new and unsaved.
type Program struct {
	ID        int64      `json:"id"`
	Title     string     `json:"programTitle"`
	Exercises []Exercise `json:"exercises"`
}

// User is the backend's user record.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
