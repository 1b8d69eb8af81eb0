package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateComment inserts a comment on a challenge.
func (s *Store) CreateComment(ctx context.Context, comment *Comment) (*Comment, error) {
	res, err := s.comments().InsertOne(ctx, bson.M{
		"text":         comment.Text,
		"challenge_id": comment.ChallengeID,
		"user_id":      comment.UserID,
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to insert comment")
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

// ListCommentsByChallenge returns the comments on one challenge.
func (s *Store) ListCommentsByChallenge(ctx context.Context, challengeID string) ([]Comment, error) {
	cursor, err := s.comments().Find(ctx, bson.M{"challenge_id": challengeID})
	if err != nil {
		return nil, wrapInternal(err, "failed to list comments")
	}
	defer cursor.Close(ctx)

	results := []Comment{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapInternal(err, "failed to decode comments")
	}
	return results, nil
}

// DeleteComment removes a comment by id.
func (s *Store) DeleteComment(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := s.comments().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapInternal(err, "failed to delete comment")
	}
	if res.DeletedCount == 0 {
		return ErrCommentNotFound
	}
	return nil
}
