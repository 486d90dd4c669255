package models

// EnrollmentRecord is a user's progress state for one course, embedded in the
// user document's course_detail array. CourseName is the identity key within
// the owning user; the reconciler enforces at most one record per coursename.
// StartDate, EndDate and Grade are pointers because absence means "not yet
// known", not "empty string" — a nil field is never written to the store.
type EnrollmentRecord struct {
	CourseName string  `json:"coursename" bson:"coursename"`
	Level      int     `json:"level" bson:"level"`
	Status     string  `json:"status" bson:"status"`
	StartDate  *string `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Grade      *string `json:"grade,omitempty" bson:"grade,omitempty"`
}

// EnrollmentUpdate is one incoming progress report. CourseName, Level and
// Status are mandatory; the optional fields carry through only when present
// in the request payload.
type EnrollmentUpdate struct {
	CourseName string  `json:"coursename"`
	Level      int     `json:"level"`
	Status     string  `json:"status"`
	StartDate  *string `json:"start_date,omitempty"`
	EndDate    *string `json:"end_date,omitempty"`
	Grade      *string `json:"grade,omitempty"`
}

// EnrollmentPatch is the field-level patch the reconciler computes for the
// merge branch. Level and Status are always applied; a nil optional leaves
// the stored value untouched.
type EnrollmentPatch struct {
	Level     int
	Status    string
	StartDate *string
	EndDate   *string
	Grade     *string
}
