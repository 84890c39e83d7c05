package accounts

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"dialdesk/internal/auth"
	"dialdesk/internal/mail"
	"dialdesk/pkg/logger"
)

var (
	ErrNotFound           = errors.New("accounts: not found")
	ErrInvalidArgument    = errors.New("accounts: invalid argument")
	ErrDuplicateEmail     = errors.New("accounts: email already exists")
	ErrInvalidCredentials = errors.New("accounts: invalid credentials")
	ErrWrongOldPassword   = errors.New("accounts: old password is incorrect")
	ErrWeakPassword       = errors.New("accounts: password must be at least 8 characters")
	ErrInvalidOTP         = errors.New("accounts: invalid or expired otp")
	ErrTooManyRequests    = errors.New("accounts: too many otp requests")
)

const bcryptCost = 10

type Service struct {
	repo   Repository
	otp    OTPStore
	tokens *auth.Manager
	mailer mail.Sender
	clock  func() time.Time
}

func NewService(repo Repository, otp OTPStore, tokens *auth.Manager, mailer mail.Sender) *Service {
	return &Service{repo: repo, otp: otp, tokens: tokens, mailer: mailer, clock: time.Now}
}

type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	CompanyName   string `json:"companyName"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type AuthResult struct {
	Token   string
	Account Profile
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResult, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || req.Password == "" {
		return AuthResult{}, ErrInvalidArgument
	}

	if _, ok, err := s.repo.GetByEmail(ctx, req.Email); err != nil {
		return AuthResult{}, err
	} else if ok {
		return AuthResult{}, ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := s.clock().UTC()
	a := Account{
		ID:            uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		CompanyName:   req.CompanyName,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
		PasswordHash:  string(hash),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.IssueRegister(now, a.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Account: a.profile()}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	a, ok, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if !ok {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueLogin(s.clock().UTC(), a.ID)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Account: a.profile()}, nil
}

type ProfileUpdate struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	CompanyName   string `json:"companyName"`
	ContactNumber string `json:"contactNumber"`
}

func (s *Service) UpdateProfile(ctx context.Context, accountID string, upd ProfileUpdate) (Profile, error) {
	a, ok, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return Profile{}, err
	}
	if !ok {
		return Profile{}, ErrNotFound
	}

	if upd.FirstName != "" {
		a.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		a.LastName = upd.LastName
	}
	if upd.CompanyName != "" {
		a.CompanyName = upd.CompanyName
	}
	if upd.ContactNumber != "" {
		a.ContactNumber = upd.ContactNumber
	}
	a.UpdatedAt = s.clock().UTC()

	if err := s.repo.Update(ctx, a); err != nil {
		return Profile{}, err
	}
	return a.profile(), nil
}

func (s *Service) ChangePassword(ctx context.Context, accountID, oldPassword, newPassword string) error {
	a, ok, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrWrongOldPassword
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, a.ID, string(hash))
}

// ForgotPassword generates a fresh 6-digit code, stores it with a TTL and
// mails it. A new request supersedes any outstanding code for the address.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ErrInvalidArgument
	}

	_, ok, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	allowed, err := s.otp.AllowRequest(ctx, email)
	if err != nil {
		return err
	}
	if !allowed {
		return ErrTooManyRequests
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	if err := s.otp.Put(ctx, email, code); err != nil {
		return err
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		// The stored code stays valid; the user can retry the request.
		logger.From(ctx).Error("otp email delivery failed", "email", email, "err", err)
		return fmt.Errorf("send otp: %w", err)
	}
	return nil
}

func (s *Service) VerifyOTP(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || code == "" {
		return ErrInvalidArgument
	}

	stored, ok, err := s.otp.Get(ctx, email)
	if err != nil {
		return err
	}
	if !ok || stored != code {
		return ErrInvalidOTP
	}
	return nil
}

// ResetPassword verifies the code, rehashes the password and deletes the code
// so it cannot be replayed.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if err := s.VerifyOTP(ctx, email, code); err != nil {
		return err
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	email = strings.TrimSpace(strings.ToLower(email))
	a, ok, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(ctx, a.ID, string(hash)); err != nil {
		return err
	}
	return s.otp.Delete(ctx, email)
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
