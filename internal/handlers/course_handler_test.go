package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/store"
)

type fakeCourseStore struct {
	courses  []models.Course
	failWith error
}

func (f *fakeCourseStore) List(context.Context) ([]models.Course, error) {
	return f.courses, f.failWith
}

func (f *fakeCourseStore) FindByName(_ context.Context, name string) (*models.Course, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.courses {
		if f.courses[i].CourseName == name {
			return &f.courses[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func TestGetCoursesReturnsCatalog(t *testing.T) {
	h := NewCourseHandler(&fakeCourseStore{courses: []models.Course{
		{CourseName: "Network Security", Levels: 3, Host: "eve", Status: models.CourseReleased},
		{CourseName: "CS101", Levels: 5, Host: "bob", Status: models.CourseDraft},
	}})

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	rr := httptest.NewRecorder()
	h.GetCourses(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got []models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 2)
}

func TestGetCourseByName(t *testing.T) {
	h := NewCourseHandler(&fakeCourseStore{courses: []models.Course{
		{CourseName: "Network Security", Levels: 3, Host: "eve", Status: models.CourseReleased},
	}})

	req := httptest.NewRequest(http.MethodGet, "/courses/Network%20Security", nil)
	req = mux.SetURLVars(req, map[string]string{"courseName": "Network Security"})
	rr := httptest.NewRecorder()
	h.GetCourseByName(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var got models.Course
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, "Network Security", got.CourseName)
	require.Equal(t, 3, got.Levels)
}

func TestGetCourseByNameNotFound(t *testing.T) {
	h := NewCourseHandler(&fakeCourseStore{})

	req := httptest.NewRequest(http.MethodGet, "/courses/Nope", nil)
	req = mux.SetURLVars(req, map[string]string{"courseName": "Nope"})
	rr := httptest.NewRecorder()
	h.GetCourseByName(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Equal(t, "Course not found", resp["error"])
}
