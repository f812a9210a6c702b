package auth

// Identity is the authenticated principal carried by an access token.
type Identity struct {
	UserID   int64
	Username string
}
