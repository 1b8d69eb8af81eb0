package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type credentialDoc struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Email string             `bson:"email"`
	Hash  string             `bson:"hash"`
}

// InsertCredential stores a bcrypt hash for the local identity provider
// and returns the credential id.
func (s *Store) InsertCredential(ctx context.Context, email, hash string) (string, error) {
	res, err := s.credentials().InsertOne(ctx, credentialDoc{Email: email, Hash: hash})
	if err != nil {
		return "", wrapInternal(err, "failed to insert credential")
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

// FindCredentialByEmail returns the credential id and stored hash.
func (s *Store) FindCredentialByEmail(ctx context.Context, email string) (string, string, error) {
	var doc credentialDoc
	err := s.credentials().FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if isNoDocuments(err) {
		return "", "", ErrCredentialNotFound
	}
	if err != nil {
		return "", "", wrapInternal(err, "failed to look up credential")
	}
	return doc.ID.Hex(), doc.Hash, nil
}

// DeleteCredential removes a stored credential by id.
func (s *Store) DeleteCredential(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	res, err := s.credentials().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapInternal(err, "failed to delete credential")
	}
	if res.DeletedCount == 0 {
		return ErrCredentialNotFound
	}
	return nil
}
