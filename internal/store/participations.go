package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateParticipation enrolls a user in a challenge. A user can join a
// given challenge once; repeats conflict.
func (s *Store) CreateParticipation(ctx context.Context, userID, challengeID string) (*Participation, error) {
	key := bson.M{"user_id": userID, "challenge_id": challengeID}

	dup := s.participations().FindOne(ctx, key)
	if err := dup.Err(); err == nil {
		return nil, ErrAlreadyJoined
	} else if !isNoDocuments(err) {
		return nil, wrapInternal(err, "failed to check participation")
	}

	participation := &Participation{
		UserID:      userID,
		ChallengeID: challengeID,
		Completed:   false,
		JoinedAt:    time.Now().UTC(),
	}

	res, err := s.participations().InsertOne(ctx, bson.M{
		"user_id":      participation.UserID,
		"challenge_id": participation.ChallengeID,
		"completed":    participation.Completed,
		"joined_at":    participation.JoinedAt,
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to insert participation")
	}

	participation.ID = res.InsertedID.(primitive.ObjectID)
	return participation, nil
}

// ListParticipationsByUser returns every challenge enrollment of a user.
func (s *Store) ListParticipationsByUser(ctx context.Context, userID string) ([]Participation, error) {
	cursor, err := s.participations().Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, wrapInternal(err, "failed to list participations")
	}
	defer cursor.Close(ctx)

	results := []Participation{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapInternal(err, "failed to decode participations")
	}
	return results, nil
}
