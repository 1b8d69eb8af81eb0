package store

import (
	"github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store errors carry HTTP status in Code so the handler layer maps them
// without type switches, same contract as the auth package errors.
var (
	ErrInvalidObjectID = errors.New("identifier is not a valid object id", errors.CategoryBadInput).
				WithCode(errors.CodeBadRequest).
				WithTextCode("INVALID_OBJECT_ID")

	ErrCategoryNameTaken = errors.New("a category with that name already exists", errors.CategoryConflict).
				WithCode(errors.CodeBadRequest).
				WithTextCode("CATEGORY_NAME_TAKEN")

	ErrCategoryNotFound = errors.New("category not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("CATEGORY_NOT_FOUND")

	// ErrCategoryHasChallenges guards deletion: a category referenced by
	// challenges cannot be removed.
	ErrCategoryHasChallenges = errors.New("category has challenges and cannot be deleted", errors.CategoryConflict).
					WithCode(errors.CodeBadRequest).
					WithTextCode("CATEGORY_HAS_CHALLENGES")

	ErrChallengeNotFound = errors.New("challenge not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("CHALLENGE_NOT_FOUND")

	ErrNoUpdateFields = errors.New("no fields to update", errors.CategoryBadInput).
				WithCode(errors.CodeBadRequest).
				WithTextCode("NO_UPDATE_FIELDS")

	ErrAlreadyJoined = errors.New("user already joined this challenge", errors.CategoryConflict).
				WithCode(errors.CodeConflict).
				WithTextCode("ALREADY_JOINED")

	ErrCommentNotFound = errors.New("comment not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("COMMENT_NOT_FOUND")

	ErrCredentialNotFound = errors.New("credential not found", errors.CategoryNotFound).
				WithCode(errors.CodeNotFound).
				WithTextCode("CREDENTIAL_NOT_FOUND")
)

func wrapInternal(err error, msg string) error {
	return errors.Wrap(err, errors.CategoryInternal, msg).WithCode(errors.CodeInternal)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
