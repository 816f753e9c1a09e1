package utils

import (
	"context"

	"github.com/google/uuid"

	"asset-system/pkg/contextkeys"
	apperrors "asset-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUserEmailFromCtx(ctx context.Context) (string, error) {
	email, ok := ctx.Value(contextkeys.UserEmailKey).(string)
	if !ok {
		return "", apperrors.ErrUserIDNotFoundInContext
	}
	return email, nil
}
