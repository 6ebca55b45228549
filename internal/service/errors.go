package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// client-side sentinels

	// ErrNoSession is returned by client operations invoked before a
	// successful login or after logout.
	ErrNoSession = errors.New("no active session")

	// ErrVaultDecryption marks a vault blob that the current master
	// password cannot open. Callers must not overwrite the remote copy
	// after seeing it.
	ErrVaultDecryption = errors.New("vault decryption failed")

	// ErrRecipientKeyMissing means the recipient has no registered public
	// key, so no envelope can be built for them.
	ErrRecipientKeyMissing = errors.New("recipient has no registered public key")

	// ErrEnvelopeConsumed means the envelope was already accepted or
	// rejected, on this device or another.
	ErrEnvelopeConsumed = errors.New("share envelope already consumed")

	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
)
