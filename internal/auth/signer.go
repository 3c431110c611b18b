package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

// URLSigner produces and validates HMAC-signed, expiring capability URLs for
// gated file downloads. Signed URLs are stateless: expiry is the only
// invalidation mechanism.
type URLSigner struct {
	secret []byte
	now    func() time.Time
}

// NewURLSigner creates a signer with the given secret.
func NewURLSigner(secret string) *URLSigner {
	return &URLSigner{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Generate returns a signed download path for the resource, valid for ttl.
func (s *URLSigner) Generate(resourcePath string, ttl time.Duration) string {
	expiry := s.now().Add(ttl).UnixMilli()
	signature := s.sign(resourcePath, expiry)
	return fmt.Sprintf("/api/secure/%s?expires=%d&signature=%s", resourcePath, expiry, signature)
}

// Verify reports whether the expiry and signature authorize access to the
// resource. Missing parameters are rejected before any signature work. All
// failure modes look the same to the caller; which sub-check failed is never
// disclosed.
func (s *URLSigner) Verify(resourcePath, expires, signature string) bool {
	if resourcePath == "" || expires == "" || signature == "" {
		return false
	}

	expiry, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return false
	}

	// A URL presented at exactly its expiry millisecond is already expired.
	if !s.now().Before(time.UnixMilli(expiry)) {
		return false
	}

	given, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}

	expected, err := hex.DecodeString(s.sign(resourcePath, expiry))
	if err != nil {
		return false
	}

	// Constant-time comparison; naive string equality would leak timing.
	return hmac.Equal(given, expected)
}

func (s *URLSigner) sign(resourcePath string, expiry int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s:%d", resourcePath, expiry)
	return hex.EncodeToString(mac.Sum(nil))
}
