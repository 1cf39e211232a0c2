// Package client is a typed client of the Tendril API. Content is published in two
// steps: analyze the text, then create it with the returned analysis id.
package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/limbo/tendril/pkg/entity"
	"github.com/limbo/tendril/pkg/httputil"
)

const DefaultTimeout = 15 * time.Second

type Options struct {
	// Timeout bounds every request. Zero means DefaultTimeout.
	Timeout    time.Duration
	HTTPClient *http.Client
	// Identity is used when set. Otherwise a FileIdentity over IdentityFile is created.
	Identity     IdentityProvider
	IdentityFile string
	// Now is the clock for local due date checks.
	Now func() time.Time
}

type Client struct {
	baseURL  string
	http     *http.Client
	identity IdentityProvider
	now      func() time.Time
}

type TaskInput struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	DueDate     entity.Date `json:"due_date"`
}

type TaskCompletion struct {
	Message   string      `json:"message"`
	TaskID    string      `json:"task_id"`
	Date      entity.Date `json:"date"`
	Completed bool        `json:"completed"`
}

type PostInput struct {
	AnalysisID uuid.UUID
	Title      string
	Content    string
	Author     string
	Category   string
}

type CommentInput struct {
	AnalysisID uuid.UUID
	Content    string
	ParentID   *uuid.UUID
}

type TipInput struct {
	AnalysisID uuid.UUID
	Content    string
	Author     string
	Category   string
}

type PostReaction struct {
	Message        string `json:"message"`
	PostID         string `json:"post_id"`
	ReactionsCount int    `json:"reactions_count"`
	UserReacted    bool   `json:"user_reacted"`
}

type CommentReaction struct {
	Message        string `json:"message"`
	CommentID      string `json:"comment_id"`
	ReactionsCount int    `json:"reactions_count"`
	UserReacted    bool   `json:"user_reacted"`
}

type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type analyzeRequest struct {
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

type createPostRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author,omitempty"`
	Category   string `json:"category,omitempty"`
}

type createCommentRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	ParentID   string `json:"parent_id,omitempty"`
}

type createTipRequest struct {
	AnalysisID string `json:"analysis_id"`
	UserID     string `json:"user_id"`
	Content    string `json:"content"`
	Author     string `json:"author,omitempty"`
	Category   string `json:"category,omitempty"`
}

func New(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		now:     now,
	}
	c.identity = opts.Identity
	if c.identity == nil {
		c.identity = NewFileIdentity(opts.IdentityFile, c)
	}
	return c
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	var out Health
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

// StartSession asks the server for a new anonymous session.
func (c *Client) StartSession(ctx context.Context) (*Identity, error) {
	var out Identity
	if err := c.do(ctx, http.MethodPost, "/api/session", nil, nil, &out, nil); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Identity(ctx context.Context) (*Identity, error) {
	return c.identity.Identity(ctx)
}

func (c *Client) GetTasks(ctx context.Context) ([]*entity.Task, error) {
	out := make([]*entity.Task, 0)
	if err := c.authed(ctx, http.MethodGet, "/api/tasks", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTask(ctx context.Context, in TaskInput) (*entity.Task, error) {
	if err := ValidateTask(in, c.today()); err != nil {
		return nil, err
	}
	var out entity.Task
	if err := c.authed(ctx, http.MethodPost, "/api/tasks", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, in TaskInput) (*entity.Task, error) {
	if err := ValidateTask(in, c.today()); err != nil {
		return nil, err
	}
	var out entity.Task
	if err := c.authed(ctx, http.MethodPut, "/api/tasks/"+id.String(), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.authed(ctx, http.MethodDelete, "/api/tasks/"+id.String(), nil, nil, nil)
}

// UpdateTaskCompletion toggles the task for one date. The streak changes on the
// server, so callers fetch it again afterwards.
func (c *Client) UpdateTaskCompletion(ctx context.Context, id uuid.UUID, date entity.Date, completed bool) (*TaskCompletion, error) {
	query := url.Values{"completed": []string{strconv.FormatBool(completed)}}
	var out TaskCompletion
	path := "/api/tasks/" + id.String() + "/complete/" + date.String()
	if err := c.authed(ctx, http.MethodPut, path, query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCalendarDay(ctx context.Context, date entity.Date) (*entity.CalendarDay, error) {
	var out entity.CalendarDay
	if err := c.authed(ctx, http.MethodGet, "/api/calendar/"+date.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetStreak(ctx context.Context) (*entity.StreakSummary, error) {
	var out entity.StreakSummary
	if err := c.authed(ctx, http.MethodGet, "/api/streak", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetPosts(ctx context.Context) ([]*entity.ForumPost, error) {
	out := make([]*entity.ForumPost, 0)
	if err := c.authed(ctx, http.MethodGet, "/api/posts", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPost(ctx context.Context, id uuid.UUID) (*entity.ForumPost, error) {
	var out entity.ForumPost
	if err := c.authed(ctx, http.MethodGet, "/api/posts/"+id.String(), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzePost(ctx context.Context, title, content string) (*entity.ModerationAnalysis, error) {
	if err := ValidatePost(title, content); err != nil {
		return nil, err
	}
	return c.analyze(ctx, "/api/posts/analyze", PostText(title, content))
}

func (c *Client) CreatePost(ctx context.Context, in PostInput) (*entity.ForumPost, error) {
	if err := ValidatePost(in.Title, in.Content); err != nil {
		return nil, err
	}
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return nil, asTransport(err)
	}
	var out entity.ForumPost
	err = c.do(ctx, http.MethodPost, "/api/posts", nil, createPostRequest{
		AnalysisID: in.AnalysisID.String(),
		UserID:     id.SessionID.String(),
		Title:      in.Title,
		Content:    in.Content,
		Author:     in.Author,
		Category:   in.Category,
	}, &out, id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReactToPost(ctx context.Context, id uuid.UUID) (*PostReaction, error) {
	var out PostReaction
	if err := c.authed(ctx, http.MethodPost, "/api/posts/"+id.String()+"/react", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetComments(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	out := make([]*entity.Comment, 0)
	if err := c.authed(ctx, http.MethodGet, "/api/posts/"+postID.String()+"/comments", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetCommentTree fetches the comments of a post and indexes the replies.
func (c *Client) GetCommentTree(ctx context.Context, postID uuid.UUID) (*CommentTree, error) {
	comments, err := c.GetComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

func (c *Client) AnalyzeComment(ctx context.Context, content string) (*entity.ModerationAnalysis, error) {
	if err := ValidateComment(content); err != nil {
		return nil, err
	}
	return c.analyze(ctx, "/api/comments/analyze", content)
}

func (c *Client) CreateComment(ctx context.Context, postID uuid.UUID, in CommentInput) (*entity.Comment, error) {
	if err := ValidateComment(in.Content); err != nil {
		return nil, err
	}
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return nil, asTransport(err)
	}
	req := createCommentRequest{
		AnalysisID: in.AnalysisID.String(),
		UserID:     id.SessionID.String(),
		Content:    in.Content,
	}
	if in.ParentID != nil {
		req.ParentID = in.ParentID.String()
	}
	var out entity.Comment
	if err := c.do(ctx, http.MethodPost, "/api/posts/"+postID.String()+"/comments", nil, req, &out, id); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReactToComment(ctx context.Context, id uuid.UUID) (*CommentReaction, error) {
	var out CommentReaction
	if err := c.authed(ctx, http.MethodPost, "/api/comments/"+id.String()+"/react", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTips(ctx context.Context) ([]*entity.Tip, error) {
	out := make([]*entity.Tip, 0)
	if err := c.authed(ctx, http.MethodGet, "/api/tips", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetFeaturedTips(ctx context.Context) ([]*entity.Tip, error) {
	out := make([]*entity.Tip, 0)
	if err := c.authed(ctx, http.MethodGet, "/api/tips/featured", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRandomTip(ctx context.Context) (*entity.Tip, error) {
	var out entity.Tip
	if err := c.authed(ctx, http.MethodGet, "/api/tips/random", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AnalyzeTip(ctx context.Context, content string) (*entity.ModerationAnalysis, error) {
	if err := ValidateTip(content); err != nil {
		return nil, err
	}
	return c.analyze(ctx, "/api/tips/analyze", content)
}

func (c *Client) CreateTip(ctx context.Context, in TipInput) (*entity.Tip, error) {
	if err := ValidateTip(in.Content); err != nil {
		return nil, err
	}
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return nil, asTransport(err)
	}
	var out entity.Tip
	err = c.do(ctx, http.MethodPost, "/api/tips", nil, createTipRequest{
		AnalysisID: in.AnalysisID.String(),
		UserID:     id.SessionID.String(),
		Content:    in.Content,
		Author:     in.Author,
		Category:   in.Category,
	}, &out, id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLimits reads the analysis budget without spending it.
func (c *Client) GetLimits(ctx context.Context) (*entity.RateLimitInfo, error) {
	var out entity.RateLimitInfo
	if err := c.authed(ctx, http.MethodGet, "/api/moderation/limits", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) analyze(ctx context.Context, path, text string) (*entity.ModerationAnalysis, error) {
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return nil, asTransport(err)
	}
	var out entity.ModerationAnalysis
	err = c.do(ctx, http.MethodPost, path, nil, analyzeRequest{
		Content: text,
		UserID:  id.SessionID.String(),
	}, &out, id)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) today() entity.Date {
	return entity.DateOf(c.now())
}

func (c *Client) authed(ctx context.Context, method, path string, query url.Values, body, out any) error {
	id, err := c.identity.Identity(ctx)
	if err != nil {
		return asTransport(err)
	}
	return c.do(ctx, method, path, query, body, out, id)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, id *Identity) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return &TransportError{Err: errors.New("encoding request error: " + err.Error())}
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		req.Header.Set("Authorization", "Bearer "+id.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return rateLimitError(resp, data)
	case resp.StatusCode == http.StatusUnauthorized && id != nil:
		// the stored session is gone; start a new one on the next call
		err := errorResponse(resp.StatusCode, data)
		if forgetErr := c.identity.Forget(); forgetErr != nil {
			err.Err = errors.New("forgetting session error: " + forgetErr.Error())
		}
		return err
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errorResponse(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return &TransportError{StatusCode: resp.StatusCode, Err: errors.New("decoding response error: " + err.Error())}
	}
	return nil
}

func rateLimitError(resp *http.Response, data []byte) error {
	var body httputil.RateLimitErrorResponse
	rlErr := &RateLimitError{}
	if err := sonic.Unmarshal(data, &body); err == nil {
		rlErr.Message = body.Message
		rlErr.Info = body.RateLimit
	}
	if rlErr.Message == "" {
		rlErr.Message = "Too many analysis requests. Please wait before trying again."
	}
	if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
		rlErr.RetryAfter = time.Duration(secs) * time.Second
	}
	return rlErr
}

func errorResponse(status int, data []byte) *TransportError {
	var body httputil.ErrorResponse
	tErr := &TransportError{StatusCode: status}
	if err := sonic.Unmarshal(data, &body); err == nil {
		tErr.Message = body.Message
	}
	return tErr
}

func asTransport(err error) error {
	var tErr *TransportError
	var rlErr *RateLimitError
	if errors.As(err, &tErr) || errors.As(err, &rlErr) {
		return err
	}
	return &TransportError{Err: err}
}
