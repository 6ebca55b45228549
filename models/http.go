package models

// Wire bodies of the relay REST API. The relay treats every "encrypted_*"
// field as opaque text: it never holds a key that could open them.

// VaultBlob is the body of GET/PUT /api/vault: one ciphertext string per
// user, replaced atomically on every save (last write wins).
type VaultBlob struct {
	EncryptedData string `json:"encrypted_data"`
}

// PublicKeyResponse is the body of GET /api/keys/{email}.
type PublicKeyResponse struct {
	Email     string `json:"email"`
	PublicKey string `json:"public_key"`
}

// ShareRequest is the body of POST /api/share. The sender addresses the
// envelope by recipient email; the relay resolves the inbox.
type ShareRequest struct {
	RecipientEmail string `json:"recipient_email"`
	EncryptedData  string `json:"encrypted_data"`
	EncryptedKey   string `json:"encrypted_key"`
}

// ShareCreatedResponse is the body returned by POST /api/share.
type ShareCreatedResponse struct {
	ID string `json:"id"`
}

// LoginResponse is the body of POST /api/auth/login: the stored key
// material the client needs to unlock the session private key. The bearer
// token travels in the Authorization response header.
type LoginResponse struct {
	Email               string `json:"email"`
	PublicKey           string `json:"public_key"`
	EncryptedPrivateKey string `json:"encrypted_private_key"`
}
