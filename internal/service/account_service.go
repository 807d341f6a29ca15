package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/averoza/account-api/internal/domain"
	"github.com/averoza/account-api/internal/repository/ports"
	"github.com/averoza/account-api/internal/util"
)

const minPasswordLength = 8

// Validation and token outcomes. Handlers translate these into the HTTP
// envelope; anything not in this list is an infrastructure failure.
var (
	ErrEmptyInput               = errors.New("empty input fields")
	ErrInvalidName              = errors.New("invalid name entered")
	ErrInvalidEmail             = errors.New("invalid email entered")
	ErrInvalidDate              = errors.New("invalid date of birth entered")
	ErrWeakPassword             = errors.New("password too short")
	ErrDuplicateAccount         = errors.New("account with the provided email already exists")
	ErrVerificationDispatch     = errors.New("verification dispatch failed")
	ErrNoPendingVerification    = errors.New("no pending verification")
	ErrVerificationExpired      = errors.New("verification link expired")
	ErrInvalidVerificationToken = errors.New("invalid verification token")
	ErrMissingCredentials       = errors.New("missing credentials")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrNotVerified              = errors.New("email not verified")
	ErrUnknownAccount           = errors.New("unknown account")
	ErrResetDispatch            = errors.New("password reset dispatch failed")
	ErrNoPendingReset           = errors.New("no pending password reset")
	ErrResetExpired             = errors.New("password reset link expired")
	ErrInvalidResetToken        = errors.New("invalid password reset token")
)

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZÀ-ÿ ]+$`)
	emailRe = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
)

// MailSender delivers the account lifecycle emails. The raw secret travels
// only inside the link; everything persisted is hashed.
type MailSender interface {
	SendVerification(ctx context.Context, to, link string, expiresIn time.Duration) error
	SendPasswordReset(ctx context.Context, to, link string, expiresIn time.Duration) error
}

// AccountService owns the token-gated account lifecycle: signup with
// verification-token issuance, verification, sign-in gating, and the
// reset-token flow.
type AccountService struct {
	accounts      ports.AccountRepository
	verifications ports.VerificationTokenRepository
	resets        ports.ResetTokenRepository
	mailer        MailSender

	baseURL         string
	verificationTTL time.Duration
	resetTTL        time.Duration
}

func NewAccountService(
	accounts ports.AccountRepository,
	verifications ports.VerificationTokenRepository,
	resets ports.ResetTokenRepository,
	mailer MailSender,
	baseURL string,
	verificationTTL, resetTTL time.Duration,
) *AccountService {
	return &AccountService{
		accounts:        accounts,
		verifications:   verifications,
		resets:          resets,
		mailer:          mailer,
		baseURL:         strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		verificationTTL: verificationTTL,
		resetTTL:        resetTTL,
	}
}

type SignUpParams struct {
	Name        string
	Email       string
	Password    string
	DateOfBirth string
}

// SignUpResult reports the pending account; the record itself is withheld
// until verification completes.
type SignUpResult struct {
	AccountID string
	Email     string
}

func (s *AccountService) SignUp(ctx context.Context, params SignUpParams) (*SignUpResult, error) {
	name := strings.TrimSpace(params.Name)
	email := strings.TrimSpace(params.Email)
	password := strings.TrimSpace(params.Password)
	dateOfBirth := strings.TrimSpace(params.DateOfBirth)

	// First failure wins; no store access before validation passes.
	if name == "" || email == "" || password == "" || dateOfBirth == "" {
		return nil, ErrEmptyInput
	}
	if !nameRe.MatchString(name) {
		return nil, ErrInvalidName
	}
	if !emailRe.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	birthDate, err := parseBirthDate(dateOfBirth)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if len(password) < minPasswordLength {
		return nil, ErrWeakPassword
	}

	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, salt, err := util.DeriveSecret(password)
	if err != nil {
		return nil, err
	}

	account, err := s.accounts.Create(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		PasswordSalt: salt,
		DateOfBirth:  birthDate,
		Verified:     false,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateAccount
		}
		return nil, err
	}

	// The account row stays even when dispatch fails; a retry re-issues.
	if err := s.issueVerification(ctx, account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVerificationDispatch, err)
	}

	return &SignUpResult{AccountID: account.ID.Hex(), Email: account.Email}, nil
}

func (s *AccountService) issueVerification(ctx context.Context, account *domain.Account) error {
	secret, err := util.NewOpaqueSecret(account.ID.Hex())
	if err != nil {
		return err
	}
	hash, salt, err := util.DeriveSecret(secret)
	if err != nil {
		return err
	}

	now := time.Now()
	if _, err := s.verifications.Create(ctx, &domain.VerificationToken{
		AccountID:  account.ID,
		SecretHash: hash,
		SecretSalt: salt,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.verificationTTL),
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/user/verify/%s/%s", s.baseURL, account.ID.Hex(), secret)
	return s.mailer.SendVerification(ctx, account.Email, link, s.verificationTTL)
}

// ConfirmVerification consumes a verification token. An expired token takes
// the whole unverified account with it: there is no resend endpoint, so a
// dead token leaves nothing worth keeping.
func (s *AccountService) ConfirmVerification(ctx context.Context, accountID, secret string) error {
	id, err := bson.ObjectIDFromHex(strings.TrimSpace(accountID))
	if err != nil {
		return ErrNoPendingVerification
	}

	token, err := s.verifications.FindByAccount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoPendingVerification
		}
		return err
	}

	if token.Expired(time.Now()) {
		if err := s.verifications.DeleteByAccount(ctx, id); err != nil {
			return err
		}
		if err := s.resets.DeleteByAccount(ctx, id); err != nil {
			return err
		}
		if err := s.accounts.Delete(ctx, id); err != nil {
			return err
		}
		return ErrVerificationExpired
	}

	if !util.VerifySecret(secret, token.SecretSalt, token.SecretHash) {
		// Account and token stay intact so the correct link still works.
		return ErrInvalidVerificationToken
	}

	if err := s.accounts.MarkVerified(ctx, id); err != nil {
		return err
	}
	return s.verifications.DeleteByAccount(ctx, id)
}

// SignIn checks credentials for a verified account. Unknown email and wrong
// password report the same outcome.
func (s *AccountService) SignIn(ctx context.Context, email, password string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !account.Verified {
		return nil, ErrNotVerified
	}

	if !util.VerifySecret(password, account.PasswordSalt, account.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// RequestPasswordReset issues a fresh reset token for a verified account,
// superseding all prior ones, and mails a link built from the caller-supplied
// redirect base.
func (s *AccountService) RequestPasswordReset(ctx context.Context, email, redirectBase string) error {
	email = strings.TrimSpace(email)
	redirectBase = strings.TrimSpace(redirectBase)
	if email == "" || redirectBase == "" {
		return ErrEmptyInput
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUnknownAccount
		}
		return err
	}

	if !account.Verified {
		return ErrNotVerified
	}

	if err := s.issueReset(ctx, account, redirectBase); err != nil {
		return fmt.Errorf("%w: %v", ErrResetDispatch, err)
	}
	return nil
}

func (s *AccountService) issueReset(ctx context.Context, account *domain.Account, redirectBase string) error {
	// Delete-then-insert keeps at most one intended active token. Not
	// transactional; concurrent requests can race, last issuance wins on
	// lookup.
	if err := s.resets.DeleteByAccount(ctx, account.ID); err != nil {
		return err
	}

	secret, err := util.NewOpaqueSecret(account.ID.Hex())
	if err != nil {
		return err
	}
	hash, salt, err := util.DeriveSecret(secret)
	if err != nil {
		return err
	}

	now := time.Now()
	if _, err := s.resets.Create(ctx, &domain.ResetToken{
		AccountID:  account.ID,
		SecretHash: hash,
		SecretSalt: salt,
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.resetTTL),
	}); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/%s/%s", strings.TrimRight(redirectBase, "/"), account.ID.Hex(), secret)
	return s.mailer.SendPasswordReset(ctx, account.Email, link, s.resetTTL)
}

// ResetPassword consumes a reset token and installs the new password. An
// expired token is deleted but the account survives; it was already verified.
func (s *AccountService) ResetPassword(ctx context.Context, accountID, secret, newPassword string) error {
	accountID = strings.TrimSpace(accountID)
	secret = strings.TrimSpace(secret)
	newPassword = strings.TrimSpace(newPassword)
	if accountID == "" || secret == "" || newPassword == "" {
		return ErrEmptyInput
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	id, err := bson.ObjectIDFromHex(accountID)
	if err != nil {
		return ErrNoPendingReset
	}

	token, err := s.resets.FindByAccount(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNoPendingReset
		}
		return err
	}

	if token.Expired(time.Now()) {
		if err := s.resets.DeleteByAccount(ctx, id); err != nil {
			return err
		}
		return ErrResetExpired
	}

	if !util.VerifySecret(secret, token.SecretSalt, token.SecretHash) {
		return ErrInvalidResetToken
	}

	hash, salt, err := util.DeriveSecret(newPassword)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePassword(ctx, id, hash, salt); err != nil {
		return err
	}
	return s.resets.DeleteByAccount(ctx, id)
}

func parseBirthDate(value string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("unrecognized date format")
}
