package models

import "time"

// User represents an account on the relay. The relay stores only values it
// cannot reverse: the auth-hash verifier, the plaintext public key (meant
// to be discoverable by email), and the private key ciphertext produced
// under the owner's master password. The master password itself never
// appears in any wire or storage form.
type User struct {
	// UserID is the internal identifier assigned by the relay database.
	// Persistence-layer only.
	UserID int64 `json:"-"`

	// Email is the unique account identifier and the address other users
	// look up in the public key directory.
	Email string `json:"email"`

	// AuthHash is the login verifier: hex SHA-256 of master password plus
	// email, computed client-side. It lets the relay authenticate the user
	// without ever receiving the password, and is unusable as an
	// encryption key.
	AuthHash string `json:"auth_hash,omitempty"`

	// PublicKey is the RSA public key, base64 of the PKIX DER encoding.
	PublicKey string `json:"public_key,omitempty"`

	// EncryptedPrivateKey is the RSA private key (base64 PKCS#8 DER)
	// symmetric-encrypted under the owner's master password. Opaque to the
	// relay; decrypted client-side right after login.
	EncryptedPrivateKey string `json:"encrypted_private_key,omitempty"`

	CreatedAt time.Time `json:"created_at,omitzero"`
}

// TableName returns the relay database table backing the User model.
func (u User) TableName() string {
	return "users"
}

// KeyPair holds both halves of a user's RSA keypair in portable encoded
// form: base64 PKIX DER for the public key, base64 PKCS#8 DER for the
// private key. Generated once at signup. Losing the private half makes
// every pending and future share to this user unreadable.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}
