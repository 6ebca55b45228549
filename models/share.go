// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package models

import "time"

// ShareEnvelope is the server-persisted record of one item shared from
// Sender to Recipient. EncryptedData is the entry ciphertext under a
// one-time symmetric key; EncryptedKey is that key wrapped with the
// recipient's RSA public key. The relay stores and routes the envelope
// without ever being able to open either field.
//
// An envelope is consumed (deleted) by the recipient exactly once, on
// accept or reject.
type ShareEnvelope struct {
	ID             string    `json:"id"`
	SenderEmail    string    `json:"sender_email"`
	RecipientEmail string    `json:"recipient_email"`
	EncryptedData  string    `json:"encrypted_data"`
	EncryptedKey   string    `json:"encrypted_key"`
	CreatedAt      time.Time `json:"created_at"`
}

// ShareOutcome reports the result of sending one entry to one contact.
// Sharing to several contacts is sequential with per-contact outcomes, so
// one failing recipient never rolls back envelopes already delivered.
type ShareOutcome struct {
	ContactEmail string
	EnvelopeID   string
	Err          error
}

// Ok reports whether the share to this contact succeeded.
func (o ShareOutcome) Ok() bool { return o.Err == nil }
