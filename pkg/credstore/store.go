package credstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"github.com/hushboard/credkit/pkg/bruteforce"
	"github.com/hushboard/credkit/pkg/passpolicy"
	"github.com/hushboard/credkit/pkg/recovery"
	"github.com/hushboard/credkit/pkg/totp"
)

// usernameRegex enforces the allowed shape: a letter followed by letters,
// digits or underscores.
var usernameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// TOTPResult reports how a second-factor code was satisfied.
type TOTPResult struct {
	BackupCodeUsed       bool
	RemainingBackupCodes int
}

// Store owns credential records and orchestrates passphrase hashing, the
// TOTP lifecycle, recovery redemption and creation throttling on top of a
// keyed Storage collaborator.
//
// Mutations to a single record are serialized by a per-username lock, so
// concurrent updates for the same user cannot silently discard each other's
// effects; operations on different users do not contend.
type Store struct {
	storage       Storage
	config        Config
	logger        *slog.Logger
	now           func() time.Time
	loginGuard    *bruteforce.Guard
	creationGuard *bruteforce.Guard
	cipher        *totp.Cipher

	locksMu   sync.Mutex
	nameLocks map[string]*sync.Mutex

	// dummySalt and dummyHash feed a real argon2 verification on the
	// unknown-username path, keeping Authenticate's failure timing
	// independent of account existence.
	dummySalt []byte
	dummyHash []byte
}

// New creates a credential store over the given storage collaborator.
func New(storage Storage, opts ...Option) (*Store, error) {
	s := &Store{
		storage:   storage,
		config:    DefaultConfig(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       time.Now,
		nameLocks: make(map[string]*sync.Mutex),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.loginGuard == nil {
		s.loginGuard = bruteforce.New(bruteforce.DefaultConfig())
	}
	if s.creationGuard == nil {
		s.creationGuard = bruteforce.New(bruteforce.CreationConfig())
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}
	s.dummySalt = salt
	s.dummyHash = hashPassphrase("credkit-dummy-verification", salt)

	return s, nil
}

// lockName returns the serialization lock for a lowercased username.
func (s *Store) lockName(key string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	mu, ok := s.nameLocks[key]
	if !ok {
		mu = &sync.Mutex{}
		s.nameLocks[key] = mu
	}
	return mu
}

// Create registers a new account. On success it returns the sanitized
// record and the plaintext recovery words; the words are never retrievable
// again after this call returns.
func (s *Store) Create(ctx context.Context, username, passphrase, sourceAddr string, profile Profile) (Record, []string, error) {
	var sourceKey string
	if sourceAddr != "" {
		sourceKey = bruteforce.HashSource(sourceAddr)
		if s.creationGuard.IsLimited(sourceKey) {
			return Record{}, nil, ErrRateLimited
		}
	}

	if err := validateUsername(username, s.config); err != nil {
		return Record{}, nil, err
	}
	if err := passpolicy.Validate(passphrase); err != nil {
		return Record{}, nil, errors.Join(ErrWeakPassphrase, err)
	}

	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	if _, err := s.storage.Get(ctx, key); err == nil {
		return Record{}, nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrRecordNotFound) {
		return Record{}, nil, errors.Join(ErrPersistence, err)
	}

	salt, err := generateSalt()
	if err != nil {
		return Record{}, nil, err
	}

	words, recoverySalt, recoveryHash, err := newRecoveryPhrase()
	if err != nil {
		return Record{}, nil, err
	}

	now := s.now()
	record := &Record{
		Username:       username,
		UsernameLower:  key,
		PassphraseHash: hashPassphrase(passphrase, salt),
		Salt:           salt,
		RecoveryHash:   recoveryHash,
		RecoverySalt:   recoverySalt,
		Profile:        profile.clone(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.storage.Put(ctx, key, record); err != nil {
		return Record{}, nil, errors.Join(ErrPersistence, err)
	}

	// Count the successful creation against the source's daily budget.
	if sourceKey != "" {
		s.creationGuard.RecordFailure(sourceKey)
	}

	s.logger.InfoContext(ctx, "account created", slog.String("username", key))

	return record.Sanitized(), words, nil
}

// Authenticate verifies a username/passphrase pair. The brute-force guard
// is consulted, and short-circuits, before any record lookup or comparison,
// including for usernames that do not exist. Both failure shapes are
// ErrInvalidCredentials with matched timing, so neither the response nor
// its latency reveals whether the account exists.
func (s *Store) Authenticate(ctx context.Context, username, passphrase, sourceAddr string) (Record, error) {
	sourceKey := bruteforce.HashSource(sourceAddr)
	if s.loginGuard.IsLimited(sourceKey) {
		return Record{}, ErrTooManyAttempts
	}

	key := NormalizeUsername(username)
	record, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			// Burn an equivalent derivation so the miss costs as much as
			// a wrong passphrase.
			verifyPassphrase(passphrase, s.dummySalt, s.dummyHash)
			s.loginGuard.RecordFailure(sourceKey)
			return Record{}, ErrInvalidCredentials
		}
		return Record{}, errors.Join(ErrPersistence, err)
	}

	if !verifyPassphrase(passphrase, record.Salt, record.PassphraseHash) {
		s.loginGuard.RecordFailure(sourceKey)
		return Record{}, ErrInvalidCredentials
	}

	s.loginGuard.Clear(sourceKey)
	return record.Sanitized(), nil
}

// Update mutates profile fields after re-proving the current passphrase.
// Credential material is never touched here.
func (s *Store) Update(ctx context.Context, username, passphrase string, updates ProfileUpdate) (Record, error) {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return Record{}, err
	}

	if !verifyPassphrase(passphrase, record.Salt, record.PassphraseHash) {
		return Record{}, ErrInvalidCredentials
	}

	record.Profile = record.Profile.apply(updates)
	record.UpdatedAt = s.now()

	if err := s.storage.Put(ctx, key, record); err != nil {
		return Record{}, errors.Join(ErrPersistence, err)
	}

	return record.Sanitized(), nil
}

// Recover redeems a recovery phrase: on success the passphrase is replaced
// with a fresh salt and hash, the old phrase becomes permanently invalid,
// and a newly generated phrase is returned to the caller exactly once.
// Both rotations land in a single persisted write; a storage failure leaves
// the record untouched.
func (s *Store) Recover(ctx context.Context, username string, words []string, newPassphrase string) ([]string, error) {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return nil, err
	}

	if record.RecoveryHash == "" {
		return nil, ErrNoRecoveryAvailable
	}
	if !recovery.VerifyPhrase(words, record.RecoverySalt, record.RecoveryHash) {
		return nil, ErrInvalidRecoveryPhrase
	}
	if err := passpolicy.Validate(newPassphrase); err != nil {
		return nil, errors.Join(ErrWeakPassphrase, err)
	}

	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}

	newWords, recoverySalt, recoveryHash, err := newRecoveryPhrase()
	if err != nil {
		return nil, err
	}

	record.Salt = salt
	record.PassphraseHash = hashPassphrase(newPassphrase, salt)
	record.RecoverySalt = recoverySalt
	record.RecoveryHash = recoveryHash
	record.UpdatedAt = s.now()

	if err := s.storage.Put(ctx, key, record); err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "account recovered", slog.String("username", key))

	return newWords, nil
}

// SetupTOTP begins two-factor enrollment. The generated secret and backup
// codes land in the record's pending fields only; the account's effective
// 2FA state is unchanged until ConfirmTOTP succeeds, so an abandoned setup
// can never lock anyone out.
func (s *Store) SetupTOTP(ctx context.Context, username, passphrase string) (secret string, backupCodes []string, provisioningURI string, err error) {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return "", nil, "", err
	}

	if !verifyPassphrase(passphrase, record.Salt, record.PassphraseHash) {
		return "", nil, "", ErrInvalidCredentials
	}
	if record.TOTPEnabled {
		return "", nil, "", ErrTOTPAlreadyEnabled
	}

	secret, err = totp.GenerateSecretKey()
	if err != nil {
		return "", nil, "", err
	}
	backupCodes, err = totp.GenerateBackupCodes(totp.BackupCodeCount)
	if err != nil {
		return "", nil, "", err
	}
	backupSalt, err := totp.GenerateBackupSalt()
	if err != nil {
		return "", nil, "", err
	}

	stored, err := s.sealSecret(secret)
	if err != nil {
		return "", nil, "", err
	}

	record.TOTPPendingSecret = stored
	record.TOTPPendingBackupCodes = totp.HashBackupCodes(backupCodes, backupSalt)
	record.TOTPPendingBackupSalt = backupSalt
	record.UpdatedAt = s.now()

	if err := s.storage.Put(ctx, key, record); err != nil {
		return "", nil, "", errors.Join(ErrPersistence, err)
	}

	provisioningURI, err = totp.ProvisioningURI(totp.Params{
		Secret:      secret,
		AccountName: record.Username,
		Issuer:      s.config.Issuer,
	})
	if err != nil {
		return "", nil, "", err
	}

	return secret, backupCodes, provisioningURI, nil
}

// ConfirmTOTP validates a code against the pending secret and, on success,
// atomically promotes pending to active. A wrong code leaves the pending
// state intact so a later correct confirm still succeeds.
func (s *Store) ConfirmTOTP(ctx context.Context, username, passphrase, code string) error {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return err
	}

	if !verifyPassphrase(passphrase, record.Salt, record.PassphraseHash) {
		return ErrInvalidCredentials
	}
	if !record.HasPendingTOTP() {
		return ErrNoPendingTOTP
	}

	secret, err := s.openSecret(record.TOTPPendingSecret)
	if err != nil {
		return err
	}

	ok, err := totp.ValidateTOTPAt(secret, code, s.now())
	if err != nil || !ok {
		return ErrInvalidTOTPCode
	}

	record.TOTPEnabled = true
	record.TOTPSecret = record.TOTPPendingSecret
	record.TOTPBackupCodes = record.TOTPPendingBackupCodes
	record.TOTPBackupSalt = record.TOTPPendingBackupSalt
	record.TOTPPendingSecret = ""
	record.TOTPPendingBackupCodes = nil
	record.TOTPPendingBackupSalt = nil
	record.UpdatedAt = s.now()

	if err := s.storage.Put(ctx, key, record); err != nil {
		return errors.Join(ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "totp enabled", slog.String("username", key))

	return nil
}

// DisableTOTP turns off two-factor auth. It demands both factors: the
// passphrase and a currently valid TOTP or backup code.
func (s *Store) DisableTOTP(ctx context.Context, username, passphrase, code string) error {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return err
	}

	if !verifyPassphrase(passphrase, record.Salt, record.PassphraseHash) {
		return ErrInvalidCredentials
	}
	if !record.TOTPEnabled {
		return ErrTOTPNotEnabled
	}

	if _, err := s.checkSecondFactor(record, code); err != nil {
		return err
	}

	record.TOTPEnabled = false
	record.TOTPSecret = ""
	record.TOTPBackupCodes = nil
	record.TOTPBackupSalt = nil
	record.UpdatedAt = s.now()

	if err := s.storage.Put(ctx, key, record); err != nil {
		return errors.Join(ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "totp disabled", slog.String("username", key))

	return nil
}

// VerifyTOTP checks a second-factor code after passphrase authentication
// has already succeeded. The live TOTP window is tried first, then backup
// codes; a matched backup code is consumed and the remaining count reported.
func (s *Store) VerifyTOTP(ctx context.Context, username, code string) (TOTPResult, error) {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	record, err := s.getRecord(ctx, key)
	if err != nil {
		return TOTPResult{}, err
	}

	if !record.TOTPEnabled {
		return TOTPResult{}, ErrTOTPNotEnabled
	}

	result, err := s.checkSecondFactor(record, code)
	if err != nil {
		return TOTPResult{}, err
	}

	if result.BackupCodeUsed {
		record.UpdatedAt = s.now()
		if err := s.storage.Put(ctx, key, record); err != nil {
			return TOTPResult{}, errors.Join(ErrPersistence, err)
		}
	}

	return result, nil
}

// Delete removes an account entirely. Admin-only path with no enumeration
// concern, so absence is reported plainly.
func (s *Store) Delete(ctx context.Context, username string) error {
	key := NormalizeUsername(username)
	mu := s.lockName(key)
	mu.Lock()
	defer mu.Unlock()

	if err := s.storage.Delete(ctx, key); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return errors.Join(ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "account deleted", slog.String("username", key))

	return nil
}

// Count reports the number of registered accounts via the storage fold.
func (s *Store) Count(ctx context.Context) (int, error) {
	acc, err := s.storage.Fold(ctx, 0, func(acc any, _ *Record) any {
		return acc.(int) + 1
	})
	if err != nil {
		return 0, errors.Join(ErrPersistence, err)
	}
	return acc.(int), nil
}

// checkSecondFactor validates a live TOTP code, falling back to backup
// codes. On a backup match the record's stored list is reduced in place;
// the caller persists it.
func (s *Store) checkSecondFactor(record *Record, code string) (TOTPResult, error) {
	secret, err := s.openSecret(record.TOTPSecret)
	if err != nil {
		return TOTPResult{}, err
	}

	if ok, err := totp.ValidateTOTPAt(secret, code, s.now()); err == nil && ok {
		return TOTPResult{}, nil
	}

	remaining, err := totp.ConsumeBackupCode(code, record.TOTPBackupSalt, record.TOTPBackupCodes)
	if err != nil {
		return TOTPResult{}, ErrInvalidTOTPCode
	}

	record.TOTPBackupCodes = remaining
	return TOTPResult{BackupCodeUsed: true, RemainingBackupCodes: len(remaining)}, nil
}

// getRecord loads a record, mapping storage errors into the package taxonomy.
func (s *Store) getRecord(ctx context.Context, key string) (*Record, error) {
	record, err := s.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, errors.Join(ErrPersistence, err)
	}
	return record, nil
}

// sealSecret encrypts a TOTP secret for storage when a cipher is configured.
func (s *Store) sealSecret(secret string) (string, error) {
	if s.cipher == nil {
		return secret, nil
	}
	sealed, err := s.cipher.Encrypt(secret)
	if err != nil {
		return "", fmt.Errorf("failed to seal totp secret: %w", err)
	}
	return sealed, nil
}

// openSecret reverses sealSecret.
func (s *Store) openSecret(stored string) (string, error) {
	if s.cipher == nil {
		return stored, nil
	}
	secret, err := s.cipher.Decrypt(stored)
	if err != nil {
		return "", fmt.Errorf("failed to open totp secret: %w", err)
	}
	return secret, nil
}

// newRecoveryPhrase generates a phrase with its salt and hash.
func newRecoveryPhrase() (words []string, salt []byte, hash string, err error) {
	words, err = recovery.GeneratePhrase()
	if err != nil {
		return nil, nil, "", err
	}
	salt, err = recovery.GenerateSalt()
	if err != nil {
		return nil, nil, "", err
	}
	return words, salt, recovery.HashPhrase(words, salt), nil
}

// validateUsername checks length bounds then shape.
func validateUsername(username string, cfg Config) error {
	switch {
	case len(username) < cfg.MinUsernameLen:
		return ErrUsernameTooShort
	case len(username) > cfg.MaxUsernameLen:
		return ErrUsernameTooLong
	case !usernameRegex.MatchString(username):
		return ErrInvalidUsername
	}
	return nil
}
