package service

import "golang.org/x/crypto/bcrypt"

// hashPassword derives a salted bcrypt digest from a plaintext password. The
// per-password salt is embedded in the digest; nothing is stored separately.
func hashPassword(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// verifyPassword reports whether plain matches the stored bcrypt digest.
// bcrypt's comparison is constant-time over the derived key.
func verifyPassword(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
