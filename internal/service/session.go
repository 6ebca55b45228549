package service

import "github.com/anorlov/vaultshare/internal/crypto"

// Session is the unlocked state of one logged-in account. It owns the
// symmetric cipher keyed by the master password and the decrypted private
// key, and nothing outside the session holds either. Dropping the session
// (Clear) re-locks everything; there is no process-global key.
type Session struct {
	email      string
	privateKey string
	cipher     crypto.VaultCipher
}

// NewSession builds an unlocked session. privateKey is the decrypted
// base64 PKCS#8 private key; cipher must already be keyed.
func NewSession(email, privateKey string, cipher crypto.VaultCipher) *Session {
	return &Session{
		email:      email,
		privateKey: privateKey,
		cipher:     cipher,
	}
}

// Email returns the account address of this session.
func (s *Session) Email() string { return s.email }

// PrivateKey returns the decrypted private key for envelope unwrapping.
func (s *Session) PrivateKey() string { return s.privateKey }

// Cipher returns the session's symmetric cipher.
func (s *Session) Cipher() crypto.VaultCipher { return s.cipher }

// Clear erases the key material. Every cipher operation afterwards fails
// with crypto.ErrKeyNotSet.
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.privateKey = ""
	if s.cipher != nil {
		s.cipher.Clear()
	}
}
