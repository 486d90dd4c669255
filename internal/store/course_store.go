package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
)

// CourseStore wraps the Courses collection. Read-only catalog access; course
// authoring happens outside this service.
type CourseStore struct {
	collection *mongo.Collection
}

func NewCourseStore(client *mongo.Client, dbName string) *CourseStore {
	return &CourseStore{
		collection: client.Database(dbName).Collection("Courses"),
	}
}

// checkStatus rejects a decoded document whose status is outside the closed
// set before it can reach callers.
func checkStatus(c *models.Course) error {
	if !c.Status.Valid() {
		return fmt.Errorf("course %q: unrecognized status %q", c.CourseName, c.Status)
	}
	return nil
}

func (s *CourseStore) FindByName(ctx context.Context, name string) (*models.Course, error) {
	var course models.Course
	err := s.collection.FindOne(ctx, bson.M{"coursename": name}).Decode(&course)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find course %q: %w", name, err)
	}
	if err := checkStatus(&course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseStore) List(ctx context.Context) ([]models.Course, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	var courses []models.Course
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, fmt.Errorf("decode courses: %w", err)
	}
	for i := range courses {
		if err := checkStatus(&courses[i]); err != nil {
			return nil, err
		}
	}
	return courses, nil
}
