// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog/models"
)

// maxPasswordBytes is the longest password bcrypt accepts.
const maxPasswordBytes = 72

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldName     = "name"
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldAvatar   = "avatar"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldAuthor   = "author"
)

// RequestValidator implements [Validator] for the inbound request models:
// RegisterRequest, Credentials, NewPost and PostUpdate.
//
// Both value and pointer forms are accepted. A field counts as present when
// it is non-empty after trimming spaces.
type RequestValidator struct{}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj. Returns ErrUnsupportedType for any other type.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.NewPost:
		return v.validateNewPost(value, fields...)
	case *models.NewPost:
		return v.validateNewPost(*value, fields...)

	case models.PostUpdate:
		return v.validatePostUpdate(value)
	case *models.PostUpdate:
		return v.validatePostUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateRegister checks a registration form.
//
// Default validated fields: name, username, email, password, avatar.
func (v *RequestValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldUsername, FieldEmail, FieldPassword, FieldAvatar}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blank(req.Name) {
				return ErrMissingRegisterFields
			}
		case FieldUsername:
			if blank(req.Username) {
				return ErrMissingRegisterFields
			}
		case FieldEmail:
			if blank(req.Email) {
				return ErrMissingRegisterFields
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrMissingRegisterFields
			}
			if len(req.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldAvatar:
			if req.AvatarPath == "" {
				return ErrMissingAvatar
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials checks a login request.
//
// Default validated fields: username, email, password.
func (v *RequestValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(c.Username) {
				return ErrMissingLoginFields
			}
		case FieldEmail:
			if blank(c.Email) {
				return ErrMissingLoginFields
			}
		case FieldPassword:
			if c.Password == "" {
				return ErrMissingLoginFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNewPost checks a post creation request. The cover image is optional.
//
// Default validated fields: title, content, author.
func (v *RequestValidator) validateNewPost(p models.NewPost, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldAuthor}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blank(p.Title) {
				return ErrMissingPostFields
			}
		case FieldContent:
			if blank(p.Content) {
				return ErrMissingPostFields
			}
		case FieldAuthor:
			if p.AuthorID == "" {
				return ErrMissingAuthor
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePostUpdate requires at least one non-empty field.
func (v *RequestValidator) validatePostUpdate(u models.PostUpdate) error {
	if blankPtr(u.Title) && blankPtr(u.Content) && u.CoverImagePath == "" {
		return ErrNoUpdateFields
	}

	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blankPtr(s *string) bool {
	return s == nil || blank(*s)
}
