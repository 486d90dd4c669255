package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/auth"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/handlers"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/middleware"
)

// SetupRouter wires every endpoint to its handler. Handlers arrive fully
// constructed; no store handles are created here.
func SetupRouter(userHandler *handlers.UserHandler, courseHandler *handlers.CourseHandler, certHandler *handlers.CertificateHandler, a *auth.Auth) *mux.Router {
	router := mux.NewRouter()

	// Health check endpoint
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Server is healthy"))
	}).Methods("GET")

	router.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
	router.HandleFunc("/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/courses/{courseName}", courseHandler.GetCourseByName).Methods("GET")
	router.HandleFunc("/register", userHandler.Register).Methods("POST")
	router.HandleFunc("/login", userHandler.Login).Methods("POST")
	router.HandleFunc("/users/{usernameOrEmail}", userHandler.GetUser).Methods("GET")
	router.HandleFunc("/users/{usernameOrEmail}/course_detail", userHandler.UpdateCourseDetail).Methods("PATCH")
	router.Handle("/certificate", middleware.LearnerAuth(a, http.HandlerFunc(certHandler.Issue))).Methods("POST")

	return router
}
