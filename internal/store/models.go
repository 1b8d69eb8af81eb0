package store

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored profile document. Passwords never live here; the
// identity provider owns credentials.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Firstname string             `bson:"firstname" json:"firstname"`
	Lastname  string             `bson:"lastname" json:"lastname"`
	Email     string             `bson:"email" json:"email"`
	Active    bool               `bson:"active" json:"active"`
	Admin     bool               `bson:"admin" json:"admin"`
}

// Category groups challenges.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Text string             `bson:"text" json:"text"`
}

// ChallengeSummary is the projection embedded in category listings.
type ChallengeSummary struct {
	Title string `bson:"title" json:"title"`
}

// CategoryWithChallenges is the aggregation result of joining a category
// with the challenges that reference it. ID is pre-stringified by the
// pipeline's $toString stage.
type CategoryWithChallenges struct {
	ID              string             `bson:"id" json:"id"`
	Name            string             `bson:"name" json:"name"`
	Text            string             `bson:"text" json:"text"`
	TotalChallenges int                `bson:"total_challenges" json:"total_challenges"`
	Challenges      []ChallengeSummary `bson:"challenges" json:"challenges"`
}

// Challenge is a user-created challenge within a category. UserID is the
// creator's profile id and is always taken from the verified principal.
type Challenge struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Active      bool               `bson:"active" json:"active"`
}

// ChallengeUpdate carries a partial update. Nil fields are left untouched.
type ChallengeUpdate struct {
	Title       *string
	Description *string
	CategoryID  *primitive.ObjectID
	Active      *bool
}

// ChallengeFilter narrows challenge listings. Zero values match everything.
type ChallengeFilter struct {
	UserID     string
	CategoryID string
}

// Participation records a user joining a challenge. The (UserID,
// ChallengeID) pair is unique.
type Participation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	ChallengeID string             `bson:"challenge_id" json:"challenge_id"`
	Completed   bool               `bson:"completed" json:"completed"`
	JoinedAt    time.Time          `bson:"joined_at" json:"joined_at"`
}

// Comment is a user comment on a challenge.
type Comment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text        string             `bson:"text" json:"text"`
	ChallengeID string             `bson:"challenge_id" json:"challenge_id"`
	UserID      string             `bson:"user_id" json:"user_id"`
}

// parseObjectID converts a path parameter into an ObjectID, mapping any
// parse failure to the shared bad-input error.
func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidObjectID
	}
	return oid, nil
}
