package auth

import "github.com/cmlabs-hris/hris-gateway/internal/domain/user"

// Session is the identity derived from a verified access token. It is only
// valid for the call that produced it.
type Session struct {
	SubjectID int64
	Email     string
	Role      user.Role
}
