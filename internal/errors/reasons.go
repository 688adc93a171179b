package errors

import "errors"

// Reason narrows a code to a combat-specific condition. It is stored in Meta
// under MetaKeyReason and carried over gRPC as ErrorInfo.Reason.
type Reason string

// MetaKeyReason is the metadata key holding the Reason
const MetaKeyReason = "reason"

// Combat error reasons
const (
	ReasonNoAccountContext     Reason = "NO_ACCOUNT_CONTEXT"
	ReasonMissingCharacterData Reason = "MISSING_CHARACTER_DATA"
	ReasonFightNotFound        Reason = "FIGHT_NOT_FOUND"
	ReasonParticipantNotFound  Reason = "PARTICIPANT_NOT_FOUND"
	ReasonStoreError           Reason = "STORE_ERROR"
)

// Reason returns the reason attached to the error, if any
func (e *Error) Reason() Reason {
	if e == nil || e.Meta == nil {
		return ""
	}
	switch r := e.Meta[MetaKeyReason].(type) {
	case Reason:
		return r
	case string:
		return Reason(r)
	}
	return ""
}

// WithReason attaches a reason to the error
func (e *Error) WithReason(r Reason) *Error {
	return e.WithMeta(MetaKeyReason, r)
}

// NoAccountContext is returned when an operation arrives without a caller identity
func NoAccountContext() *Error {
	return Unauthenticated("no account in context").WithReason(ReasonNoAccountContext)
}

// MissingCharacterData is returned when a join cannot snapshot stats because the
// account has no character or the character has no combat stats record
func MissingCharacterData(message string) *Error {
	return FailedPrecondition(message).WithReason(ReasonMissingCharacterData)
}

// FightNotFound is returned when a fight does not exist or is no longer active
func FightNotFound(fightID string) *Error {
	return NotFoundf("fight %s not found or not active", fightID).
		WithReason(ReasonFightNotFound).
		WithMeta("fight_id", fightID)
}

// ParticipantNotFound is returned when no participant row matches
func ParticipantNotFound(message string) *Error {
	return NotFound(message).WithReason(ReasonParticipantNotFound)
}

// StoreError wraps an opaque persistence failure
func StoreError(err error, message string) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return Wrap(err, message)
	}
	return WrapWithCode(err, CodeInternal, message).WithReason(ReasonStoreError)
}

// GetReason extracts the reason from an error chain
func GetReason(err error) Reason {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Reason()
	}
	return ""
}

// IsNoAccountContext reports whether err is a NoAccountContext error
func IsNoAccountContext(err error) bool {
	return GetReason(err) == ReasonNoAccountContext
}

// IsMissingCharacterData reports whether err is a MissingCharacterData error
func IsMissingCharacterData(err error) bool {
	return GetReason(err) == ReasonMissingCharacterData
}

// IsFightNotFound reports whether err is a FightNotFound error
func IsFightNotFound(err error) bool {
	return GetReason(err) == ReasonFightNotFound
}

// IsParticipantNotFound reports whether err is a ParticipantNotFound error
func IsParticipantNotFound(err error) bool {
	return GetReason(err) == ReasonParticipantNotFound
}

// IsStoreError reports whether err is a StoreError
func IsStoreError(err error) bool {
	return GetReason(err) == ReasonStoreError
}
