package credstore

import (
	"strings"
	"time"
)

// Profile carries the presentation fields attached to an account. The
// subsystem stores them opaquely; rendering belongs to the platform.
type Profile struct {
	Bio       string   `json:"bio,omitempty"`
	Location  string   `json:"location,omitempty"`
	Links     []string `json:"links,omitempty"`
	Interests []string `json:"interests,omitempty"`
}

// ProfileUpdate describes a partial profile mutation; nil fields are left
// untouched.
type ProfileUpdate struct {
	Bio       *string
	Location  *string
	Links     *[]string
	Interests *[]string
}

// Record is the per-user credential record, keyed by UsernameLower.
// Exactly one exists per lowercased username.
type Record struct {
	Username      string `json:"username"`       // display form, immutable after creation
	UsernameLower string `json:"username_lower"` // lookup key

	PassphraseHash []byte `json:"passphrase_hash,omitempty"`
	Salt           []byte `json:"salt,omitempty"`

	RecoveryHash string `json:"recovery_hash,omitempty"`
	RecoverySalt []byte `json:"recovery_salt,omitempty"`

	TOTPEnabled     bool     `json:"totp_enabled"`
	TOTPSecret      string   `json:"totp_secret,omitempty"` // encrypted at rest when a cipher is configured
	TOTPBackupCodes []string `json:"totp_backup_codes,omitempty"`
	TOTPBackupSalt  []byte   `json:"totp_backup_salt,omitempty"`

	// Pending fields exist only between setup and confirm. While present,
	// the active TOTP state above is untouched; confirm replaces it whole.
	TOTPPendingSecret      string   `json:"totp_pending_secret,omitempty"`
	TOTPPendingBackupCodes []string `json:"totp_pending_backup_codes,omitempty"`
	TOTPPendingBackupSalt  []byte   `json:"totp_pending_backup_salt,omitempty"`

	Profile Profile `json:"profile"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sanitized returns a copy with every secret-bearing field stripped. All
// accessors that hand records to callers go through this; no module outside
// the store may read hashes, salts or TOTP material.
func (r *Record) Sanitized() Record {
	out := *r
	out.PassphraseHash = nil
	out.Salt = nil
	out.RecoveryHash = ""
	out.RecoverySalt = nil
	out.TOTPSecret = ""
	out.TOTPBackupCodes = nil
	out.TOTPBackupSalt = nil
	out.TOTPPendingSecret = ""
	out.TOTPPendingBackupCodes = nil
	out.TOTPPendingBackupSalt = nil
	out.Profile = r.Profile.clone()
	return out
}

// HasPendingTOTP reports whether a setup is awaiting confirmation.
func (r *Record) HasPendingTOTP() bool {
	return r.TOTPPendingSecret != ""
}

// clone deep-copies slice-valued profile fields so a sanitized record never
// aliases stored state.
func (p Profile) clone() Profile {
	out := p
	if p.Links != nil {
		out.Links = append([]string(nil), p.Links...)
	}
	if p.Interests != nil {
		out.Interests = append([]string(nil), p.Interests...)
	}
	return out
}

// apply merges an update into the profile.
func (p Profile) apply(u ProfileUpdate) Profile {
	out := p.clone()
	if u.Bio != nil {
		out.Bio = *u.Bio
	}
	if u.Location != nil {
		out.Location = *u.Location
	}
	if u.Links != nil {
		out.Links = append([]string(nil), (*u.Links)...)
	}
	if u.Interests != nil {
		out.Interests = append([]string(nil), (*u.Interests)...)
	}
	return out
}

// NormalizeUsername lowercases a username into its lookup key.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
