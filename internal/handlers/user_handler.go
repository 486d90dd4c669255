package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/auth"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/mailer"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/models"
	"github.com/ehawsey/CyberSecuLearn-Backend/internal/store"
)

// UserStore is the account-store surface the user handlers consume.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
	FindByCredentials(ctx context.Context, identifier, password string) (*models.User, error)
	ExistsUsername(ctx context.Context, username string) (bool, error)
	ExistsEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user models.User) error
}

// ProgressApplier is the reconciliation core consumed by the course_detail
// PATCH endpoint.
type ProgressApplier interface {
	ApplyProgressUpdate(ctx context.Context, userKey string, update models.EnrollmentUpdate) error
}

type UserHandler struct {
	store    UserStore
	progress ProgressApplier
	auth     *auth.Auth
	mail     *mailer.Mailer
}

func NewUserHandler(s UserStore, p ProgressApplier, a *auth.Auth, m *mailer.Mailer) *UserHandler {
	return &UserHandler{store: s, progress: p, auth: a, mail: m}
}

// GetUsers returns every user with credentials stripped.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	users, err := h.store.List(ctx)
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser returns one user by username or email, minus the credential.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["usernameOrEmail"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.store.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Failed to fetch user data: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch user data")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Register creates a learner account. The role is always learner; callers
// cannot choose it. The enrollment collection starts empty.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName        string `json:"fullName"`
		Email           string `json:"email"`
		Username        string `json:"username"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	exists, err := h.store.ExistsUsername(ctx, req.Username)
	if err != nil {
		log.Printf("Failed to register user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "Username already exists")
		return
	}

	if req.Password != req.ConfirmPassword {
		writeError(w, http.StatusBadRequest, "Password mismatch")
		return
	}

	exists, err = h.store.ExistsEmail(ctx, req.Email)
	if err != nil {
		log.Printf("Failed to register user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	if exists {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}

	newUser := models.User{
		Username:     req.Username,
		Name:         req.FullName,
		Email:        req.Email,
		Password:     req.Password,
		Role:         models.RoleLearner,
		CourseDetail: []models.EnrollmentRecord{},
	}
	if err := h.store.Insert(ctx, newUser); err != nil {
		log.Printf("Failed to register user: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	if h.mail.Enabled() {
		go func(name, email string) {
			body := "<p>Hi " + name + ",</p><p>Welcome to CyberSecuLearn! Your account is ready.</p>"
			if err := h.mail.SendEmail(email, "Welcome to CyberSecuLearn", body); err != nil {
				log.Printf("Failed to send welcome email to %s: %v", email, err)
			}
		}(req.FullName, req.Email)
	}

	writeMessage(w, http.StatusCreated, "User registered successfully")
}

// Login verifies credentials with a single equality-matched query and sets a
// session cookie on success.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UsernameOrEmail string `json:"usernameOrEmail"`
		Password        string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	user, err := h.store.FindByCredentials(ctx, req.UsernameOrEmail, req.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Invalid username/email or password")
			return
		}
		log.Printf("Failed to login: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	token, err := h.auth.GenerateJWT(req.UsernameOrEmail, string(user.Role))
	if err != nil {
		log.Printf("Failed to issue session token: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to login")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		Path:     "/",
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}

// UpdateCourseDetail is the HTTP binding of the progress reconciler. The body
// carries a course_detail array; only the first element is consulted.
func (h *UserHandler) UpdateCourseDetail(w http.ResponseWriter, r *http.Request) {
	identifier := mux.Vars(r)["usernameOrEmail"]

	var req struct {
		CourseDetail []models.EnrollmentUpdate `json:"course_detail"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.CourseDetail) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	update := req.CourseDetail[0]
	if update.CourseName == "" {
		writeError(w, http.StatusBadRequest, "coursename is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.progress.ApplyProgressUpdate(ctx, identifier, update); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Failed to update course details: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to update course details")
		return
	}

	writeMessage(w, http.StatusOK, "Course details updated successfully")
}
