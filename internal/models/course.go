package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CourseStatus string

const (
	CourseDraft    CourseStatus = "draft"
	CourseReleased CourseStatus = "released"
)

func (s CourseStatus) Valid() bool {
	switch s {
	case CourseDraft, CourseReleased:
		return true
	}
	return false
}

// Lessons holds the media payload for a course. Opaque to the progress core.
type Lessons struct {
	Size            int      `json:"size" bson:"size"`
	VideoContent    []string `json:"video_content" bson:"video_content"`
	DocumentContent []string `json:"document_content" bson:"document_content"`
}

type Course struct {
	ID         primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	CourseName string              `json:"coursename" bson:"coursename"`
	Levels     int                 `json:"levels" bson:"levels"`
	Host       string              `json:"host" bson:"host"`
	Status     CourseStatus        `json:"status" bson:"status"`
	QnA        map[string]string   `json:"qna,omitempty" bson:"qna,omitempty"`
	Quiz       map[string][]string `json:"quiz,omitempty" bson:"quiz,omitempty"`
	Lessons    Lessons             `json:"lessons" bson:"lessons"`
}
