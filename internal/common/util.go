package common

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they are no longer needed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken formats token for the Authorization header.
func BearerToken(token string) string {
	return BearerPrefix + token
}
