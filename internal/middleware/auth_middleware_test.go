package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ehawsey/CyberSecuLearn-Backend/internal/auth"
)

func callProtected(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, *string) {
	t.Helper()
	a := auth.New("test-secret")

	var seenKey *string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key, ok := r.Context().Value(UserKeyContextKey).(string); ok {
			seenKey = &key
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/certificate", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rr := httptest.NewRecorder()
	LearnerAuth(a, next).ServeHTTP(rr, req)
	return rr, seenKey
}

func TestLearnerAuthRequiresCookie(t *testing.T) {
	rr, _ := callProtected(t, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLearnerAuthRejectsEducatorToken(t *testing.T) {
	token, err := auth.New("test-secret").GenerateJWT("eve", "educator")
	require.NoError(t, err)

	rr, _ := callProtected(t, &http.Cookie{Name: "token", Value: token})
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestLearnerAuthRejectsUnrecognizedRoleClaim(t *testing.T) {
	token, err := auth.New("test-secret").GenerateJWT("mallory", "superadmin")
	require.NoError(t, err)

	rr, _ := callProtected(t, &http.Cookie{Name: "token", Value: token})
	require.Equal(t, http.StatusForbidden, rr.Code)
}

func TestLearnerAuthPassesUserKeyThrough(t *testing.T) {
	token, err := auth.New("test-secret").GenerateJWT("alice@example.com", "learner")
	require.NoError(t, err)

	rr, seenKey := callProtected(t, &http.Cookie{Name: "token", Value: token})
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seenKey)
	require.Equal(t, "alice@example.com", *seenKey)
}
