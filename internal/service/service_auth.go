package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/soundshelf/soundshelf/internal/config"
	"github.com/soundshelf/soundshelf/internal/logger"
	"github.com/soundshelf/soundshelf/internal/store"
	"github.com/soundshelf/soundshelf/internal/utils"
	"github.com/soundshelf/soundshelf/models"
)

var (
	usernamePattern   = regexp.MustCompile(`^[a-z0-9_.-]{1,16}$`)
	hasLetterAndDigit = regexp.MustCompile(`^(.*[a-zA-Z].*\d.*|.*\d.*[a-zA-Z].*)$`)
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle, using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// ids generates server-side user identifiers.
	ids *utils.UUIDGenerator

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		ids:            utils.NewUUIDGenerator(),
		bcryptCost:     cfg.BcryptCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is trimmed and lowercased before validation, so registration
// and login are case-insensitive. The password must satisfy the minimum
// policy before it is hashed with bcrypt; the plaintext never reaches the
// repository.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - ErrInvalidUsername if the normalized username has a bad shape.
//   - ErrWeakPassword if the password fails the complexity policy.
//   - store.ErrUsernameTaken (wrapped) if the username is already in use.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Msg("empty username or password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	username := normalizeUsername(creds.Username)
	if !usernamePattern.MatchString(username) {
		log.Error().Str("username", username).Msg("invalid username shape")
		return models.User{}, ErrInvalidUsername
	}

	if len(creds.Password) < 8 || !hasLetterAndDigit.MatchString(creds.Password) {
		return models.User{}, ErrWeakPassword
	}

	digest, err := a.hashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.ids.Generate(),
		Username:     username,
		PasswordHash: digest,
		RegisteredAt: time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The username is normalized, the account looked up, and the supplied
// password compared against the stored bcrypt digest. An unknown username
// and a wrong password both surface as ErrWrongCredentials so that callers
// cannot probe which usernames exist.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Msg("empty username or password provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, normalizeUsername(creds.Username))
	if err != nil {
		log.Err(err).Msg("user search by username failed")
		return models.User{}, ErrWrongCredentials
	}

	if !a.verifyPassword(creds.Password, foundUser.PasswordHash) {
		log.Error().Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate resolves a raw bearer token to its user record.
//
// It validates the signature, issuer, and expiry, extracts the subject
// claim, and loads the user. Any failure along the way is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not learn whether the token
// was malformed, expired, or issued for a deleted account; the underlying
// cause is logged for diagnostics.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("token validation failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Err(err).Str("user_id", token.UserID).Msg("token subject lookup failed")
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	return user, nil
}

// hashPassword produces a salted bcrypt digest of the plaintext. The salt is
// embedded in the digest encoding, so the same plaintext yields a different
// digest on every call.
func (a *authService) hashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), a.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// verifyPassword reports whether plaintext matches the stored digest.
// Malformed digests simply compare as false; this method never fails.
func (a *authService) verifyPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
