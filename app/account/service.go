// Package account implements storefront sign-up and log-in against an injected credential
// store. It checks credentials only; no session or token is issued.
package account

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by LogIn for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("Invalid email or password.")

type SignUpForm struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

var (
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*]`)
)

func (f SignUpForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName,
			validation.Required.Error("First name is required"),
			validation.RuneLength(2, 0).Error("First name must be at least 2 characters long"),
		),
		validation.Field(&f.LastName,
			validation.Required.Error("Last name is required"),
			validation.RuneLength(2, 0).Error("Last name must be at least 2 characters long"),
		),
		validation.Field(&f.Email,
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Enter a valid email"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("Password is required"),
			validation.RuneLength(8, 0).Error("Password must be at least 8 characters long"),
			validation.RuneLength(0, 16).Error("Password cannot exceed 16 characters"),
			validation.Match(hasLower).Error("Password must contain at least one lowercase letter"),
			validation.Match(hasUpper).Error("Password must contain at least one uppercase letter"),
			validation.Match(hasDigit).Error("Password must contain at least one number"),
			validation.Match(hasSpecial).Error("Password must contain at least one special character"),
		),
	)
}

type Service struct {
	store CredentialStore
	log   *zap.Logger
	cost  int
}

func NewService(store CredentialStore, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		cost:  bcrypt.DefaultCost,
	}
}

// SignUp validates the form and stores the password hash. Signing up again with the same
// email replaces the stored password.
func (s *Service) SignUp(ctx context.Context, form SignUpForm) error {
	if err := form.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.store.Save(ctx, form.Email, hash); err != nil {
		return fmt.Errorf("save credentials: %w", err)
	}

	s.log.Info("account registered", zap.String("email", form.Email))
	return nil
}

// LogIn checks email and password against the store. Emails are compared exactly.
func (s *Service) LogIn(ctx context.Context, email, password string) error {
	hash, err := s.store.Lookup(ctx, email)
	if errors.Is(err, ErrUnknownAccount) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("lookup credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
