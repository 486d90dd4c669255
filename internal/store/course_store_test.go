package store

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
)

func TestCheckStatusAcceptsClosedSet(t *testing.T) {
	for _, status := range []models.CourseStatus{models.CourseDraft, models.CourseReleased} {
		c := models.Course{CourseName: "CS101", Status: status}
		require.NoError(t, checkStatus(&c))
	}
}

func TestCheckStatusRejectsUnknownValue(t *testing.T) {
	c := models.Course{CourseName: "CS101", Status: "archived"}
	err := checkStatus(&c)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unrecognized status")
}
