// Package progress holds the course-progress reconciliation core: the logic
// that turns one incoming progress report into either a field-level merge of
// an existing enrollment record or the append of a new one.
package progress

import (
	"context"
	"errors"
	"fmt"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/store"
)

// Store is the slice of the user store the reconciler needs. The concrete
// implementation is store.UserStore; tests substitute an in-memory one.
type Store interface {
	FindWithEnrollment(ctx context.Context, identifier, coursename string) (*models.User, error)
	UpdateEnrollmentFields(ctx context.Context, identifier, coursename string, patch models.EnrollmentPatch) error
	AppendEnrollment(ctx context.Context, identifier string, record models.EnrollmentRecord) error
}

type Reconciler struct {
	store Store
}

func NewReconciler(s Store) *Reconciler {
	return &Reconciler{store: s}
}

// ApplyProgressUpdate reconciles one progress report against the user's
// enrollment collection. If a record for the course already exists it is
// merged in place: level and status always overwrite, the optional date and
// grade fields overwrite only when present in the update and are otherwise
// left untouched. If no record exists a new one is appended.
//
// The lookup and the append are two separate store calls; concurrent first
// reports for the same user and course can race past each other and both
// append. Callers needing stronger guarantees must serialize per user.
//
// Exactly one store mutation is issued per call. The updated record is not
// returned; callers re-fetch if they need the new state.
func (r *Reconciler) ApplyProgressUpdate(ctx context.Context, userKey string, update models.EnrollmentUpdate) error {
	_, err := r.store.FindWithEnrollment(ctx, userKey, update.CourseName)
	switch {
	case err == nil:
		patch := models.EnrollmentPatch{
			Level:     update.Level,
			Status:    update.Status,
			StartDate: update.StartDate,
			EndDate:   update.EndDate,
			Grade:     update.Grade,
		}
		return r.store.UpdateEnrollmentFields(ctx, userKey, update.CourseName, patch)

	case errors.Is(err, store.ErrNotFound):
		// First report for this course. Grade is only ever written through
		// the merge branch, so a grade carried by a first report is dropped.
		record := models.EnrollmentRecord{
			CourseName: update.CourseName,
			Level:      update.Level,
			Status:     update.Status,
			StartDate:  update.StartDate,
			EndDate:    update.EndDate,
		}
		return r.store.AppendEnrollment(ctx, userKey, record)

	default:
		return fmt.Errorf("look up enrollment for %q: %w", userKey, err)
	}
}
