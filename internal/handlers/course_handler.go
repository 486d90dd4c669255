package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/store"
)

// CourseStore is the read-only catalog surface the course handlers consume.
type CourseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	FindByName(ctx context.Context, name string) (*models.Course, error)
}

type CourseHandler struct {
	store CourseStore
}

func NewCourseHandler(s CourseStore) *CourseHandler {
	return &CourseHandler{store: s}
}

// GetCourses retrieves the full catalog.
func (h *CourseHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	courses, err := h.store.List(ctx)
	if err != nil {
		log.Printf("Failed to fetch courses: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch courses")
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// GetCourseByName retrieves one catalog entry. Course names may contain
// spaces, so the path segment is URL-decoded before lookup.
func (h *CourseHandler) GetCourseByName(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["courseName"]
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	course, err := h.store.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Course not found")
			return
		}
		log.Printf("Failed to fetch course details: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch course details")
		return
	}

	writeJSON(w, http.StatusOK, course)
}
