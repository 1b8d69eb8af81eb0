package store

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// categoriesWithChallengesPipeline joins each category with the
// challenges that reference it and projects a summary: stringified id,
// challenge count, and the challenge titles.
func categoriesWithChallengesPipeline() []bson.M {
	return []bson.M{
		{
			"$lookup": bson.M{
				"from":         collChallenges,
				"localField":   "_id",
				"foreignField": "category_id",
				"as":           "challenges",
			},
		},
		{
			"$project": bson.M{
				"id":               bson.M{"$toString": "$_id"},
				"name":             1,
				"text":             1,
				"total_challenges": bson.M{"$size": "$challenges"},
				"challenges": bson.M{
					"$map": bson.M{
						"input": "$challenges",
						"as":    "challenge",
						"in": bson.M{
							"title": "$$challenge.title",
						},
					},
				},
			},
		},
	}
}

// categoryDeleteGuardPipeline counts the challenges referencing one
// category so deletion can refuse while any remain.
func categoryDeleteGuardPipeline(id primitive.ObjectID) []bson.M {
	return []bson.M{
		{"$match": bson.M{"_id": id}},
		{
			"$lookup": bson.M{
				"from":         collChallenges,
				"localField":   "_id",
				"foreignField": "category_id",
				"as":           "challenges",
			},
		},
		{
			"$project": bson.M{
				"id":              bson.M{"$toString": "$_id"},
				"name":            1,
				"challenge_count": bson.M{"$size": "$challenges"},
			},
		},
	}
}

// exactNameFilter matches a name case-insensitively. The name is quoted
// so user input cannot inject regex metacharacters.
func exactNameFilter(name string) bson.M {
	return bson.M{"$regex": fmt.Sprintf("^%s$", regexp.QuoteMeta(name)), "$options": "i"}
}

// CreateCategory inserts a category after checking the name is not
// already in use, ignoring case.
func (s *Store) CreateCategory(ctx context.Context, category *Category) (*Category, error) {
	dup := s.categories().FindOne(ctx, bson.M{"name": exactNameFilter(category.Name)})
	if err := dup.Err(); err == nil {
		return nil, ErrCategoryNameTaken
	} else if !isNoDocuments(err) {
		return nil, wrapInternal(err, "failed to check category name")
	}

	res, err := s.categories().InsertOne(ctx, bson.M{
		"name": category.Name,
		"text": category.Text,
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to insert category")
	}

	created := *category
	created.ID = res.InsertedID.(primitive.ObjectID)
	return &created, nil
}

// ListCategories returns every category joined with its challenges.
func (s *Store) ListCategories(ctx context.Context) ([]CategoryWithChallenges, error) {
	cursor, err := s.categories().Aggregate(ctx, categoriesWithChallengesPipeline())
	if err != nil {
		return nil, wrapInternal(err, "failed to list categories")
	}
	defer cursor.Close(ctx)

	results := []CategoryWithChallenges{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapInternal(err, "failed to decode categories")
	}
	return results, nil
}

// GetCategory returns a single category joined with its challenges.
func (s *Store) GetCategory(ctx context.Context, id string) (*CategoryWithChallenges, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	pipeline := append([]bson.M{{"$match": bson.M{"_id": oid}}}, categoriesWithChallengesPipeline()...)
	cursor, err := s.categories().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapInternal(err, "failed to get category")
	}
	defer cursor.Close(ctx)

	var results []CategoryWithChallenges
	if err := cursor.All(ctx, &results); err != nil {
		return nil, wrapInternal(err, "failed to decode category")
	}
	if len(results) == 0 {
		return nil, ErrCategoryNotFound
	}
	return &results[0], nil
}

// UpdateCategory replaces name and text, guarding against another
// category already holding the new name.
func (s *Store) UpdateCategory(ctx context.Context, id string, category *Category) (*CategoryWithChallenges, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	dup := s.categories().FindOne(ctx, bson.M{
		"name": exactNameFilter(category.Name),
		"_id":  bson.M{"$ne": oid},
	})
	if err := dup.Err(); err == nil {
		return nil, ErrCategoryNameTaken
	} else if !isNoDocuments(err) {
		return nil, wrapInternal(err, "failed to check category name")
	}

	res, err := s.categories().UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"name": category.Name, "text": category.Text},
	})
	if err != nil {
		return nil, wrapInternal(err, "failed to update category")
	}
	if res.MatchedCount == 0 {
		return nil, ErrCategoryNotFound
	}

	return s.GetCategory(ctx, id)
}

// DeleteCategory removes a category unless challenges still reference it.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	cursor, err := s.categories().Aggregate(ctx, categoryDeleteGuardPipeline(oid))
	if err != nil {
		return wrapInternal(err, "failed to check category usage")
	}
	defer cursor.Close(ctx)

	var guards []struct {
		ChallengeCount int `bson:"challenge_count"`
	}
	if err := cursor.All(ctx, &guards); err != nil {
		return wrapInternal(err, "failed to decode category usage")
	}
	if len(guards) == 0 {
		return ErrCategoryNotFound
	}
	if guards[0].ChallengeCount > 0 {
		return ErrCategoryHasChallenges
	}

	res, err := s.categories().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return wrapInternal(err, "failed to delete category")
	}
	if res.DeletedCount == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
