package services

import (
	"context"
	"errors"
	"regexp"

	"github.com/sbilibin2017/gw-job-market/internal/logger"
	"github.com/sbilibin2017/gw-job-market/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrInvalidUserType    = errors.New("invalid user type")
)

var emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// validationMessage is the human-readable text stored in the email
// validation log for the given outcome.
func validationMessage(valid bool) string {
	if valid {
		return "Email validated successfully"
	}
	return "Invalid email format"
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash, userType string) (int64, error)
}

// EmailValidationWriter records the outcome of each email validation.
type EmailValidationWriter interface {
	Save(ctx context.Context, email, action string, isValid bool, message string) (int64, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID int64, userType string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	validation EmailValidationWriter
	jwt        JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, validation EmailValidationWriter, jwt JWTGenerator) *AuthService {
	return &AuthService{
		reader:     reader,
		writer:     writer,
		validation: validation,
		jwt:        jwt,
	}
}

// Register validates the input, records the email validation outcome and
// creates a new user account. Returns the new user's id.
func (svc *AuthService) Register(ctx context.Context, username, email, password, userType string) (int64, error) {
	if username == "" || email == "" || password == "" || userType == "" {
		return 0, ErrMissingFields
	}

	valid := emailRegexp.MatchString(email)
	if _, err := svc.validation.Save(ctx, email, models.EmailActionRegistration, valid, validationMessage(valid)); err != nil {
		logger.Log.Errorw("failed to log email validation", "err", err)
		return 0, err
	}
	if !valid {
		logger.Log.Errorw("invalid email format", "email", email)
		return 0, ErrInvalidEmail
	}

	if userType != models.UserTypeFreelancer && userType != models.UserTypeRecruiter {
		logger.Log.Errorw("invalid user type", "user_type", userType)
		return 0, ErrInvalidUserType
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return 0, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username, "email", email)
		return 0, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return 0, err
	}

	id, err := svc.writer.Save(ctx, username, email, string(hashedPassword), userType)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return 0, err
	}

	return id, nil
}

// Login authenticates a user by email and returns a JWT token together
// with the authenticated user.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, *models.UserDB, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingFields
	}

	valid := emailRegexp.MatchString(email)
	if _, err := svc.validation.Save(ctx, email, models.EmailActionLogin, valid, validationMessage(valid)); err != nil {
		logger.Log.Errorw("failed to log email validation", "err", err)
		return "", nil, err
	}
	if !valid {
		logger.Log.Errorw("invalid email format", "email", email)
		return "", nil, ErrInvalidEmail
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, nil, &email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return "", nil, ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.UserType)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", nil, err
	}

	return token, user, nil
}
