package api

import (
	"github.com/mirel/fitcoach/pkg/identity"
)

// IdentityVerifierI checks tokens issued by the external identity provider
type IdentityVerifierI interface {
	ParseToken(tokenString string) (*identity.Claims, error)
}
