package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mjimenezh/coursekeeper/internal/client/models"
	"github.com/mjimenezh/coursekeeper/internal/logging"
)

// TokenSource supplies the current bearer token for outbound requests.
// An empty string means the request goes out unauthenticated.
type TokenSource func() string

// HTTPClient is the Client implementation over the backend's REST/JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     logging.Logger
}

// NewHTTPClient builds a client rooted at baseURL (no trailing slash
// required). The token source may be nil for a purely anonymous client.
func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource, log logging.Logger) *HTTPClient {
	if token == nil {
		token = func() string { return "" }
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log.With("component", "api"),
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorBody is the shape of backend error payloads. Depending on the
// endpoint the text arrives as "message" or "errorMessage".
type errorBody struct {
	Message      string `json:"message"`
	ErrorMessage string `json:"errorMessage"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.ErrorMessage
}

// do performs one JSON round trip. Transport failures are wrapped in
// ErrUnavailable; non-2xx responses become *Error with the server's message
// when the body is well-formed JSON. When out is non-nil the response body
// is decoded into it.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		c.log.Debug(ctx, "server error", "method", method, "path", path,
			"request_id", requestID, "status", resp.StatusCode, "message", eb.text())
		return &Error{Status: resp.StatusCode, Message: eb.text()}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
}

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) SearchCourses(ctx context.Context, query string, status string, page int, pageSize int) (*models.CourseSearchResult, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if status != "" {
		params.Set("status", status)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("pageSize", strconv.Itoa(pageSize))

	var result models.CourseSearchResult
	if err := c.do(ctx, http.MethodGet, "/courses/search", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodGet, "/courses/"+id, nil, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) GetCourseSummary(ctx context.Context, id string) (*models.CourseSummary, error) {
	var summary models.CourseSummary
	if err := c.do(ctx, http.MethodGet, "/courses/"+id+"/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (c *HTTPClient) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPost, "/courses", nil, req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) UpdateCourse(ctx context.Context, id string, req models.UpdateCourseRequest) (*models.Course, error) {
	var course models.Course
	if err := c.do(ctx, http.MethodPut, "/courses/"+id, nil, req, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) DeleteCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/courses/"+id, nil, nil, nil)
}

func (c *HTTPClient) PublishCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/courses/"+id+"/publish", nil, nil, nil)
}

func (c *HTTPClient) UnpublishCourse(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/courses/"+id+"/unpublish", nil, nil, nil)
}

func (c *HTTPClient) LessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := c.do(ctx, http.MethodGet, "/lessons/course/"+courseID, nil, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *HTTPClient) DeletedLessonsByCourse(ctx context.Context, courseID string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := c.do(ctx, http.MethodGet, "/lessons/course/"+courseID+"/deleted", nil, nil, &lessons); err != nil {
		return nil, err
	}
	return lessons, nil
}

func (c *HTTPClient) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.do(ctx, http.MethodGet, "/lessons/"+id, nil, nil, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *HTTPClient) CreateLesson(ctx context.Context, req models.CreateLessonRequest) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.do(ctx, http.MethodPost, "/lessons", nil, req, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *HTTPClient) UpdateLesson(ctx context.Context, id string, req models.UpdateLessonRequest) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := c.do(ctx, http.MethodPut, "/lessons/"+id, nil, req, &lesson); err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (c *HTTPClient) DeleteLesson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lessons/"+id, nil, nil, nil)
}

func (c *HTTPClient) HardDeleteLesson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/lessons/"+id+"/hard", nil, nil, nil)
}

// ReorderLesson sends the new order value as a bare JSON integer, matching
// the backend's PATCH contract.
func (c *HTTPClient) ReorderLesson(ctx context.Context, id string, newOrder int) error {
	return c.do(ctx, http.MethodPatch, "/lessons/"+id+"/reorder", nil, newOrder, nil)
}

func (c *HTTPClient) RestoreLesson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, "/lessons/"+id+"/restore", nil, nil, nil)
}
