// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Orlov

package models

import (
	"errors"
	"time"
)

// EntryType discriminates the payload variant carried by an [Entry].
type EntryType string

const (
	EntryLogin       EntryType = "login"
	EntryNote        EntryType = "secure-note"
	EntryCard        EntryType = "credit-card"
	EntryIdentity    EntryType = "identity"
	EntryBankAccount EntryType = "bank-account"
)

// SharedFolder is the folder accepted shared items are filed into.
const SharedFolder = "Shared with Me"

// AccessLevel describes what an authorized contact is allowed to do with
// an item shared to them. It is advisory metadata kept inside the owner's
// vault: once an item has been delivered the recipient holds a plaintext
// copy, so the level governs the owner's UI, not a cryptographic boundary.
type AccessLevel string

const (
	AccessView AccessLevel = "view"
	AccessFull AccessLevel = "full"
)

// ShareGrant records that an entry has been shared with a contact.
type ShareGrant struct {
	ContactID   string      `json:"contactId"`
	AccessLevel AccessLevel `json:"accessLevel"`
}

// Entry is a single vault item. The common envelope fields are always
// present; exactly one of the payload pointers is non-nil, selected by Type.
// Entries exist in plaintext only inside the client process — they are
// persisted solely as part of the encrypted vault blob.
type Entry struct {
	ID         string       `json:"id"`
	Type       EntryType    `json:"type"`
	Name       string       `json:"name"`
	Notes      string       `json:"notes,omitempty"`
	Favorite   bool         `json:"favorite"`
	Folder     string       `json:"folder,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
	SharedWith []ShareGrant `json:"sharedWith,omitempty"`

	Login       *LoginData       `json:"login,omitempty"`
	Note        *NoteData        `json:"note,omitempty"`
	Card        *CardData        `json:"card,omitempty"`
	Identity    *IdentityData    `json:"identity,omitempty"`
	BankAccount *BankAccountData `json:"bankAccount,omitempty"`
}

// LoginData is the payload of an [EntryLogin] entry.
type LoginData struct {
	SiteName string `json:"siteName,omitempty"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// PasswordHistory keeps previous passwords with the date they were
	// replaced, newest first.
	PasswordHistory []PasswordRevision `json:"passwordHistory,omitempty"`
}

// PasswordRevision is one superseded password of a login entry.
type PasswordRevision struct {
	Password string    `json:"password"`
	Date     time.Time `json:"date"`
}

// NoteData is the payload of an [EntryNote] entry. The note text itself
// lives in Entry.Notes; this struct exists so every variant has a payload
// type and room to grow (e.g. markdown flag).
type NoteData struct {
	Markdown bool `json:"markdown,omitempty"`
}

// CardData is the payload of an [EntryCard] entry.
type CardData struct {
	CardholderName string `json:"cardholderName,omitempty"`
	CardNumber     string `json:"cardNumber,omitempty"`
	CardType       string `json:"cardType,omitempty"` // "credit" or "debit"
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CVV            string `json:"cvv,omitempty"`
	PIN            string `json:"pin,omitempty"`
}

// IdentityData is the payload of an [EntryIdentity] entry.
type IdentityData struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// BankAccountData is the payload of an [EntryBankAccount] entry.
type BankAccountData struct {
	BankName      string `json:"bankName,omitempty"`
	AccountType   string `json:"accountType,omitempty"`
	RoutingNumber string `json:"routingNumber,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	SwiftCode     string `json:"swiftCode,omitempty"`
}

var (
	ErrEntryNoName          = errors.New("entry has no name")
	ErrEntryUnknownType     = errors.New("unknown entry type")
	ErrEntryPayloadMismatch = errors.New("entry payload does not match its type")
)

// Validate checks that the entry has a name, a known type, and that the
// payload pointer set matches the declared type exactly.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return ErrEntryNoName
	}

	var want any
	switch e.Type {
	case EntryLogin:
		want = e.Login
	case EntryNote:
		want = e.Note
	case EntryCard:
		want = e.Card
	case EntryIdentity:
		want = e.Identity
	case EntryBankAccount:
		want = e.BankAccount
	default:
		return ErrEntryUnknownType
	}

	if isNilPayload(want) || e.payloadCount() != 1 {
		return ErrEntryPayloadMismatch
	}

	return nil
}

func (e *Entry) payloadCount() int {
	n := 0
	if e.Login != nil {
		n++
	}
	if e.Note != nil {
		n++
	}
	if e.Card != nil {
		n++
	}
	if e.Identity != nil {
		n++
	}
	if e.BankAccount != nil {
		n++
	}
	return n
}

func isNilPayload(p any) bool {
	switch v := p.(type) {
	case *LoginData:
		return v == nil
	case *NoteData:
		return v == nil
	case *CardData:
		return v == nil
	case *IdentityData:
		return v == nil
	case *BankAccountData:
		return v == nil
	default:
		return true
	}
}
