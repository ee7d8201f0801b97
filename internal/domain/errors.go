package domain

import "errors"

// Kind classifies a domain error for transports (HTTP status, bot replies).
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindValidation Kind = "validation"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
)

// Error is a domain error carrying a stable code used for i18n lookups.
type Error struct {
	code string
	kind Kind
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code returns the stable machine code, e.g. "event_not_found".
func (e *Error) Code() string { return e.code }

// Kind returns the error class.
func (e *Error) Kind() Kind { return e.kind }

func newError(kind Kind, code, msg string) *Error {
	return &Error{code: code, kind: kind, msg: msg}
}

// Domain errors.
var (
	ErrEventNotFound         = newError(KindNotFound, "event_not_found", "event not found")
	ErrParticipationNotFound = newError(KindNotFound, "participation_not_found", "participation record not found")
	ErrFeedbackNotFound      = newError(KindNotFound, "feedback_not_found", "feedback not found")

	ErrDateTimeInPast      = newError(KindValidation, "datetime_in_past", "event start must be in the future")
	ErrInvalidSchedule     = newError(KindValidation, "invalid_schedule", "invalid date, start time or duration")
	ErrInvalidEvent        = newError(KindValidation, "invalid_event", "invalid event form")
	ErrInvalidFeedback     = newError(KindValidation, "invalid_feedback", "invalid feedback form")
	ErrInvalidGrade        = newError(KindValidation, "invalid_grade", "grade must be an integer between 0 and 100")
	ErrInvalidStatus       = newError(KindValidation, "invalid_status", "unknown participation status")
	ErrInvalidRequest      = newError(KindValidation, "invalid_request", "malformed request")
	ErrAlreadyApplied      = newError(KindValidation, "already_applied", "already applied to this event")
	ErrAlreadyMember       = newError(KindValidation, "already_member", "already a member of this event")
	ErrApplicationDeclined = newError(KindValidation, "application_declined", "application was declined for this event")
	ErrNotApplicant        = newError(KindValidation, "not_applicant", "user has no pending application for this event")
	ErrNotPlayer           = newError(KindValidation, "not_player", "user did not play in this event")
	ErrEventNotEnded       = newError(KindValidation, "event_not_ended", "event has not ended yet")

	ErrEventClosed   = newError(KindConflict, "event_closed", "event is closed")
	ErrEventFull     = newError(KindConflict, "event_full", "no open slot left")
	ErrStaleCapacity = newError(KindConflict, "stale_capacity", "event capacity changed, reload and retry")
	ErrNotOrganizer  = newError(KindForbidden, "not_organizer", "only the organizer can perform this action")
	ErrNotAuthorized = newError(KindForbidden, "not_authorized", "authentication required")
)

// Code extracts the domain error code from err, or "" when err is not a domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.code
	}
	return ""
}

// KindOf extracts the domain error kind from err, or "" when err is not a domain error.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return ""
}
