package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
)

var (
	// ErrNotFound means the identifier matched no stored document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate means an insert would violate username/email uniqueness.
	ErrDuplicate = errors.New("store: duplicate")
)

// UserStore wraps the Users collection. All lookups accept a username-or-email
// identifier; callers never declare which kind they hold, so every filter
// tries both.
type UserStore struct {
	collection *mongo.Collection
}

func NewUserStore(client *mongo.Client, dbName string) *UserStore {
	return &UserStore{
		collection: client.Database(dbName).Collection("Users"),
	}
}

// checkRole rejects a decoded document whose role is outside the closed set
// before it can reach callers.
func checkRole(u *models.User) error {
	if !u.Role.Valid() {
		return fmt.Errorf("user %q: unrecognized role %q", u.Username, u.Role)
	}
	return nil
}

// identifierFilter matches a user by username OR email, exact equality.
func identifierFilter(identifier string) bson.M {
	return bson.M{
		"$or": bson.A{
			bson.M{"username": identifier},
			bson.M{"email": identifier},
		},
	}
}

// enrollmentFilter additionally requires an embedded record for coursename.
// The positional $ operator in update documents resolves against this array
// match, so patch and filter must use the same predicate.
func enrollmentFilter(identifier, coursename string) bson.M {
	filter := identifierFilter(identifier)
	filter["course_detail.coursename"] = coursename
	return filter
}

// enrollmentPatchDocument builds the $set document for a field-level merge.
// Level and status are always written; the optional fields are written only
// when present in the patch, so a previously recorded value is never removed
// by an update that omits it.
func enrollmentPatchDocument(patch models.EnrollmentPatch) bson.M {
	set := bson.M{
		"course_detail.$.level":  patch.Level,
		"course_detail.$.status": patch.Status,
	}
	if patch.StartDate != nil {
		set["course_detail.$.start_date"] = *patch.StartDate
	}
	if patch.EndDate != nil {
		set["course_detail.$.end_date"] = *patch.EndDate
	}
	if patch.Grade != nil {
		set["course_detail.$.grade"] = *patch.Grade
	}
	return bson.M{"$set": set}
}

func (s *UserStore) FindByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, identifierFilter(identifier)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user %q: %w", identifier, err)
	}
	if err := checkRole(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByCredentials matches identifier and password in a single query, the
// way the login endpoint checks them. Plain equality on the stored
// credential; no hashing is applied anywhere in this system.
func (s *UserStore) FindByCredentials(ctx context.Context, identifier, password string) (*models.User, error) {
	filter := identifierFilter(identifier)
	filter["password"] = password

	var user models.User
	err := s.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	if err := checkRole(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindWithEnrollment returns the user only if it already holds an enrollment
// record for coursename; ErrNotFound covers both a missing user and a user
// without that course.
func (s *UserStore) FindWithEnrollment(ctx context.Context, identifier, coursename string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, enrollmentFilter(identifier, coursename)).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find enrollment %q/%q: %w", identifier, coursename, err)
	}
	if err := checkRole(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateEnrollmentFields applies the patch to the single embedded record
// matched by coursename, addressed via the positional $ operator.
func (s *UserStore) UpdateEnrollmentFields(ctx context.Context, identifier, coursename string, patch models.EnrollmentPatch) error {
	res, err := s.collection.UpdateOne(ctx, enrollmentFilter(identifier, coursename), enrollmentPatchDocument(patch))
	if err != nil {
		return fmt.Errorf("update enrollment %q/%q: %w", identifier, coursename, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendEnrollment adds a new embedded record with $addToSet. Set semantics
// dedupe only a byte-identical record; coursename uniqueness is the
// reconciler's job, enforced by its lookup before this call.
func (s *UserStore) AppendEnrollment(ctx context.Context, identifier string, record models.EnrollmentRecord) error {
	res, err := s.collection.UpdateOne(ctx, identifierFilter(identifier), bson.M{
		"$addToSet": bson.M{"course_detail": record},
	})
	if err != nil {
		return fmt.Errorf("append enrollment %q: %w", identifier, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UserStore) ExistsUsername(ctx context.Context, username string) (bool, error) {
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check username %q: %w", username, err)
	}
	return true, nil
}

func (s *UserStore) ExistsEmail(ctx context.Context, email string) (bool, error) {
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("check email %q: %w", email, err)
	}
	return true, nil
}

func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("insert user %q: %w", user.Username, err)
	}
	return nil
}

func (s *UserStore) List(ctx context.Context) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	for i := range users {
		if err := checkRole(&users[i]); err != nil {
			return nil, err
		}
	}
	return users, nil
}
