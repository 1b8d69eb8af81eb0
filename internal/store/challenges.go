package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateChallenge inserts a challenge. New challenges start active.
func (s *Store) CreateChallenge(ctx context.Context, challenge *Challenge) (*Challenge, error) {
	challenge.Active = true

	res, err := s.challenges().InsertOne(ctx, bson.M{
		"title":       challenge.Title,
		"description": challenge.Description,
		"category_id": challenge.CategoryID,
		"user_id":     challenge.UserID,
		"active":      challenge.Active,
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to insert challenge")
	}

	created := *challenge
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

// GetChallenge returns one challenge by id.
func (s *Store) GetChallenge(ctx context.Context, id string) (*Challenge, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var challenge Challenge
	err = s.challenges().FindOne(ctx, bson.M{"_id": oid}).Decode(&challenge)
	if isNoDocuments(err) {
		return nil, ErrChallengeNotFound
	}
	if err != nil {
		return nil, wrapInternal(err, "failed to get challenge")
	}
	return &challenge, nil
}

// ListChallenges returns challenges matching the filter. Empty filter
// fields are ignored.
func (s *Store) ListChallenges(ctx context.Context, filter ChallengeFilter) ([]Challenge, error) {
	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.CategoryID != "" {
		oid, err := parseObjectID(filter.CategoryID)
		if err != nil {
			return nil, err
		}
		query["category_id"] = oid
	}

	cursor, err := s.challenges().Find(ctx, query)
	if err != nil {
		return nil, wrapInternal(err, "failed to list challenges")
	}
	defer cursor.Close(ctx)

	results := []Challenge{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapInternal(err, "failed to decode challenges")
	}
	return results, nil
}

// UpdateChallenge applies a partial update, only touching the fields the
// caller set.
func (s *Store) UpdateChallenge(ctx context.Context, id string, update ChallengeUpdate) (*Challenge, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.CategoryID != nil {
		set["category_id"] = *update.CategoryID
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}
	if len(set) == 0 {
		return nil, ErrNoUpdateFields
	}

	res, err := s.challenges().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return nil, wrapInternal(err, "failed to update challenge")
	}
	if res.MatchedCount == 0 {
		return nil, ErrChallengeNotFound
	}

	return s.GetChallenge(ctx, id)
}

// DeleteChallenge removes a challenge by id.
func (s *Store) DeleteChallenge(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := s.challenges().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapInternal(err, "failed to delete challenge")
	}
	if res.DeletedCount == 0 {
		return ErrChallengeNotFound
	}
	return nil
}
