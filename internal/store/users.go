package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/altuslab/challenges-api/auth"
)

// FindProfileByEmail implements auth.ProfileStore. A missing profile is
// (nil, nil), not an error; the caller decides what absence means.
func (s *Store) FindProfileByEmail(ctx context.Context, email string) (*auth.Profile, error) {
	var user User
	err := s.users().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapInternal(err, "failed to look up profile")
	}

	return profileFromUser(&user), nil
}

// InsertProfile implements auth.ProfileStore and returns the new
// document's hex id.
func (s *Store) InsertProfile(ctx context.Context, profile *auth.Profile) (string, error) {
	user := User{
		Firstname: profile.Firstname,
		Lastname:  profile.Lastname,
		Email:     profile.Email,
		Active:    profile.Active,
		Admin:     profile.Admin,
	}

	res, err := s.users().InsertOne(ctx, user)
	if err != nil {
		return "", wrapInternal(err, "failed to insert profile")
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", wrapInternal(errors.New("unexpected inserted id type"), "failed to insert profile")
	}
	return oid.Hex(), nil
}

func profileFromUser(user *User) *auth.Profile {
	return &auth.Profile{
		ID:        user.ID.Hex(),
		Firstname: user.Firstname,
		Lastname:  user.Lastname,
		Email:     user.Email,
		Active:    user.Active,
		Admin:     user.Admin,
	}
}
