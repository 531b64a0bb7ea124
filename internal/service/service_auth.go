// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/store"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mediaService uploads the avatar staged by the HTTP layer.
	mediaService MediaService

	// idGenerator assigns ids to new users.
	idGenerator *utils.UUIDGenerator

	// passwordHashCost is the bcrypt cost used for new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now returns the current time; replaced in tests.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, mediaService MediaService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		mediaService:     mediaService,
		idGenerator:      utils.NewUUIDGenerator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		now:              time.Now,
		logger:           logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is checked up front so that a taken name does not cost an
// avatar upload. The avatar is then uploaded, the password hashed and the
// record stored. Two concurrent registrations may both pass the pre-check;
// the unique constraint decides, and the loser gets ErrUsernameTaken. When
// the store write fails the uploaded avatar is discarded.
//
// Returns the persisted user or:
//   - ErrUsernameTaken if the username is already in use.
//   - ErrMediaUploadFailed if the avatar could not be uploaded.
//   - ErrRegistrationFailed wrapping the storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("username is taken")
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("username lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	avatar, err := a.mediaService.Upload(ctx, req.AvatarPath)
	if err != nil {
		return models.User{}, err
	}

	now := a.now().UTC()
	user := models.User{
		ID:        a.idGenerator.Generate(),
		Name:      req.Name,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Avatar:    avatar.URL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	user, err = hashIfChanged(models.User{}, user, a.passwordHashCost)
	if err != nil {
		a.mediaService.Discard(ctx, avatar)
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		a.mediaService.Discard(ctx, avatar)
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Debug().Str("func", "*authService.RegisterUser").Str("username", req.Username).Msg("username taken at write time")
			return models.User{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// The account is looked up by username; the email must match the stored one
// and the password must match the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrUserNotFound if no account has that username.
//   - ErrWrongCredentials if the email does not match.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if foundUser.Email != credentials.Email {
		log.Debug().Str("func", "*authService.Login").Str("id", foundUser.ID).Msg("email does not match")
		return models.User{}, ErrWrongCredentials
	}

	if !utils.CheckPassword(foundUser.Password, credentials.Password) {
		log.Debug().Str("func", "*authService.Login").Str("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GetUser returns the user with the given id.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*authService.GetUser").Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user.Identity(), a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure is normalised to ErrTokenIsExpired or
// ErrTokenIsInvalid so that callers do not need to inspect low-level JWT
// errors. Claims are never returned for a rejected token.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsInvalid
	}

	return claims, nil
}

// hashIfChanged returns next with its Password replaced by a bcrypt hash when
// it differs from previous.Password. When the password is unchanged next is
// returned as is, so an existing hash is never hashed twice.
func hashIfChanged(previous, next models.User, cost int) (models.User, error) {
	if next.Password == previous.Password {
		return next, nil
	}

	hash, err := utils.HashPassword(next.Password, cost)
	if err != nil {
		return models.User{}, err
	}

	next.Password = hash
	return next, nil
}
