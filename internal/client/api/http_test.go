package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, func() string { return token }, nil)
}

func TestHTTPClient_RequestHeaders(t *testing.T) {
	var got *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.Write([]byte(`{}`))
	}, "tok-123")

	_, err := client.GetCourse(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/courses/c1", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "Bearer tok-123", got.Header.Get("Authorization"))
	assert.NotEmpty(t, got.Header.Get("X-Request-Id"))
}

func TestHTTPClient_NoAuthHeaderWithoutToken(t *testing.T) {
	var auth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	}, "")

	_, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, auth)
}

func TestHTTPClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nobody listening anymore

	client := NewHTTPClient(srv.URL, time.Second, nil, nil)
	err := client.Ping(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_ServerErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"El título es obligatorio"}`))
	}, "")

	_, err := client.CreateCourse(context.Background(), models.CreateCourseRequest{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "El título es obligatorio", apiErr.Message)
	assert.Equal(t, "El título es obligatorio", ServerMessage(err))
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_ErrorMessageAlternateKey(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errorMessage":"Credenciales inválidas"}`))
	}, "")

	_, err := client.Login(context.Background(), models.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, "Credenciales inválidas", ServerMessage(err))
}

func TestHTTPClient_UnauthorizedUnwraps(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}, "expired")

		err := client.DeleteCourse(context.Background(), "c1")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized, "status %d", status)
	}
}

func TestHTTPClient_NonJSONErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>boom</html>"))
	}, "")

	err := client.PublishCourse(context.Background(), "c1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Empty(t, apiErr.Message)
	assert.Empty(t, ServerMessage(err))
}

func TestHTTPClient_SearchCoursesQueryParams(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		status string
		want   string
	}{
		{name: "all params", query: "go", status: "Draft", want: "page=2&pageSize=20&q=go&status=Draft"},
		{name: "empty filters omitted", query: "", status: "", want: "page=2&pageSize=20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rawQuery string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				rawQuery = r.URL.Query().Encode()
				w.Write([]byte(`{"courses":[],"totalCount":0,"page":2,"pageSize":20,"totalPages":0}`))
			}, "")

			_, err := client.SearchCourses(context.Background(), tt.query, tt.status, 2, 20)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rawQuery)
		})
	}
}

func TestHTTPClient_ReorderSendsBareInt(t *testing.T) {
	var (
		method string
		path   string
		body   []byte
		ctype  string
	)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		ctype = r.Header.Get("Content-Type")
		body, _ = io.ReadAll(r.Body)
	}, "")

	err := client.ReorderLesson(context.Background(), "l7", 3)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, method)
	assert.Equal(t, "/lessons/l7/reorder", path)
	assert.Equal(t, "application/json", ctype)
	assert.Equal(t, "3", string(body))
}

func TestHTTPClient_LessonEndpointPaths(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Write([]byte(`[]`))
	}, "")

	ctx := context.Background()
	_, err := client.LessonsByCourse(ctx, "c1")
	require.NoError(t, err)
	_, err = client.DeletedLessonsByCourse(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, client.DeleteLesson(ctx, "l1"))
	require.NoError(t, client.HardDeleteLesson(ctx, "l1"))
	require.NoError(t, client.RestoreLesson(ctx, "l1"))

	assert.Equal(t, []string{
		"GET /lessons/course/c1",
		"GET /lessons/course/c1/deleted",
		"DELETE /lessons/l1",
		"DELETE /lessons/l1/hard",
		"PATCH /lessons/l1/restore",
	}, calls)
}

func TestHTTPClient_CourseLifecyclePaths(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		w.Write([]byte(`{}`))
	}, "")

	ctx := context.Background()
	_, err := client.CreateCourse(ctx, models.CreateCourseRequest{Title: "Go"})
	require.NoError(t, err)
	_, err = client.UpdateCourse(ctx, "c1", models.UpdateCourseRequest{Title: "Go 2"})
	require.NoError(t, err)
	_, err = client.GetCourseSummary(ctx, "c1")
	require.NoError(t, err)
	require.NoError(t, client.PublishCourse(ctx, "c1"))
	require.NoError(t, client.UnpublishCourse(ctx, "c1"))
	require.NoError(t, client.DeleteCourse(ctx, "c1"))

	assert.Equal(t, []string{
		"POST /courses",
		"PUT /courses/c1",
		"GET /courses/c1/summary",
		"PATCH /courses/c1/publish",
		"PATCH /courses/c1/unpublish",
		"DELETE /courses/c1",
	}, calls)
}

func TestHTTPClient_DecodesResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"c1","title":"Go Básico","status":"Draft"}`))
	}, "")

	course, err := client.GetCourse(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", course.ID)
	assert.Equal(t, "Go Básico", course.Title)
	assert.Equal(t, models.StatusDraft, course.Status)
}

func TestErrorIs(t *testing.T) {
	err := &Error{Status: 404, Message: "not found"}
	assert.False(t, errors.Is(err, ErrUnauthorized))
	assert.Equal(t, "api error 404: not found", err.Error())
	assert.Equal(t, "api error 500", (&Error{Status: 500}).Error())
}
