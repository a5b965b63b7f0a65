package entity

// TokenKind identifies what a signed token may be used for.
// It is carried in the token's scope claim.
type TokenKind string

const (
	// TokenKindAccess authorizes API calls.
	TokenKindAccess TokenKind = "access_token"
	// TokenKindRefresh is exchanged for a new token pair.
	TokenKindRefresh TokenKind = "refresh_token"
	// TokenKindEmail is mailed for signup confirmation and password reset.
	TokenKindEmail TokenKind = "email_token"
)

// String returns the scope claim value.
func (k TokenKind) String() string {
	return string(k)
}

// IsValid checks if the TokenKind is a known value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenKindAccess, TokenKindRefresh, TokenKindEmail:
		return true
	default:
		return false
	}
}
