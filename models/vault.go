package models

import "time"

// VaultData is the full plaintext snapshot of one user's vault. It is
// serialized to JSON and symmetric-encrypted into a single opaque blob
// before it ever leaves the client; the relay stores only the ciphertext.
type VaultData struct {
	Entries  []Entry             `json:"entries"`
	Folders  []string            `json:"folders"`
	Contacts []AuthorizedContact `json:"authorizedContacts"`
}

// EmptyVault returns a fresh vault snapshot for a newly registered user.
func EmptyVault() VaultData {
	return VaultData{
		Entries:  []Entry{},
		Folders:  []string{},
		Contacts: []AuthorizedContact{},
	}
}

// EntryByID returns a pointer to the entry with the given id, or nil.
func (v *VaultData) EntryByID(id string) *Entry {
	for i := range v.Entries {
		if v.Entries[i].ID == id {
			return &v.Entries[i]
		}
	}
	return nil
}

// ContactByEmail returns a pointer to the contact with the given email, or nil.
func (v *VaultData) ContactByEmail(email string) *AuthorizedContact {
	for i := range v.Contacts {
		if v.Contacts[i].Email == email {
			return &v.Contacts[i]
		}
	}
	return nil
}

// AuthorizedContact is a trust relationship kept inside the vault blob.
// WaitingPeriod (days) applies to emergency access requests from this
// contact; it has no effect on ordinary item sharing.
type AuthorizedContact struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	Email         string      `json:"email"`
	AccessLevel   AccessLevel `json:"accessLevel"`
	WaitingPeriod int         `json:"waitingPeriod"`
	IsActive      bool        `json:"isActive"`
	CreatedAt     time.Time   `json:"createdAt"`
}
