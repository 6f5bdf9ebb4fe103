package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"time"

	"github.com/Badsnus/club-directory/internal/domain/common/errorz"
	"github.com/Badsnus/club-directory/internal/domain/dto"
	"github.com/Badsnus/club-directory/internal/domain/entity"
	"github.com/Badsnus/club-directory/internal/domain/utils/validator"
)

const (
	codeLength = 8
	// maxCodeAttempts wrong guesses burn the pending code.
	maxCodeAttempts = 5
)

type CodeStorage interface {
	Get(ctx context.Context, email string) (dto.LoginCode, error)
	Set(ctx context.Context, email string, code dto.LoginCode, expiration time.Duration) error
	Fail(ctx context.Context, email string, expiration time.Duration) (int64, error)
	Clear(ctx context.Context, email string) error
}

type codeMailer interface {
	SendLoginCode(to string, code string) error
}

type authUserService interface {
	SignIn(ctx context.Context, email string, fullName string) (*entity.User, error)
}

// AuthService signs users in with a one-time code sent by email.
type AuthService struct {
	codes       CodeStorage
	mailer      codeMailer
	userService authUserService
	codeTTL     time.Duration
}

func NewAuthService(codes CodeStorage, mailer codeMailer, userService authUserService, codeTTL time.Duration) *AuthService {
	return &AuthService{
		codes:       codes,
		mailer:      mailer,
		userService: userService,
		codeTTL:     codeTTL,
	}
}

// RequestCode stores a fresh code for email, replacing any pending one, and
// mails it.
func (s *AuthService) RequestCode(ctx context.Context, email string, fullName string) error {
	email = NormalizeEmail(email)
	if !validator.Email(email) {
		return errorz.ErrInvalidEmail
	}

	code, err := generateRandomCode(codeLength)
	if err != nil {
		return err
	}
	if err = s.codes.Set(ctx, email, dto.LoginCode{Code: code, FullName: fullName}, s.codeTTL); err != nil {
		return err
	}
	return s.mailer.SendLoginCode(email, code)
}

// Verify consumes the pending code for email and signs the user in. After
// maxCodeAttempts wrong codes the pending one is dropped and a new one has
// to be requested.
func (s *AuthService) Verify(ctx context.Context, email string, code string) (*entity.User, error) {
	email = NormalizeEmail(email)
	stored, err := s.codes.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		attempts, err := s.codes.Fail(ctx, email, s.codeTTL)
		if err != nil {
			return nil, err
		}
		if attempts >= maxCodeAttempts {
			if err = s.codes.Clear(ctx, email); err != nil {
				return nil, err
			}
		}
		return nil, errorz.ErrInvalidCode
	}
	if err = s.codes.Clear(ctx, email); err != nil {
		return nil, err
	}
	return s.userService.SignIn(ctx, email, stored.FullName)
}

func generateRandomCode(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
