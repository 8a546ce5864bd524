package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Matching is by Code so callers can use errors.Is() against the sentinels.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrInvalidCredentials - no account matches the username/password pair.
	// The same error covers "no such user" and "wrong password".
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid username or password",
	}

	// ErrUsernameTaken - a case-insensitive match already exists.
	ErrUsernameTaken = &DomainError{
		Code:    "USERNAME_TAKEN",
		Message: "username already exists",
	}

	// ErrUserNotFound - no account with the given username.
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}

	// ErrInviteExists - a pending invite already exists for (group, invitee).
	ErrInviteExists = &DomainError{
		Code:    "INVITE_EXISTS",
		Message: "an invite has already been sent to this user",
	}

	// ErrAlreadyMember - invitee already has a membership row for the group.
	ErrAlreadyMember = &DomainError{
		Code:    "ALREADY_MEMBER",
		Message: "user is already a member of this group",
	}

	// ErrNotAuthorized - caller is not allowed to perform the operation.
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "you are not authorized to perform this action",
	}

	// ErrNotFound - resource not found.
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError creates a NOT_FOUND error with extra context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewGatewayError wraps a transport or decoding failure. A malformed payload
// is never treated as "not found".
func NewGatewayError(err error) *DomainError {
	return &DomainError{
		Code:    "GATEWAY_ERROR",
		Message: fmt.Sprintf("gateway error: %v", err),
	}
}

// ErrGatewayError is the sentinel for errors.Is checks against gateway failures.
var ErrGatewayError = &DomainError{
	Code:    "GATEWAY_ERROR",
	Message: "gateway error",
}
