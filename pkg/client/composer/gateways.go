package composer

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/tendril/pkg/client"
	"github.com/limbo/tendril/pkg/entity"
)

type PostClient interface {
	AnalyzePost(ctx context.Context, title, content string) (*entity.ModerationAnalysis, error)
	CreatePost(ctx context.Context, in client.PostInput) (*entity.ForumPost, error)
}

type CommentClient interface {
	AnalyzeComment(ctx context.Context, content string) (*entity.ModerationAnalysis, error)
	CreateComment(ctx context.Context, postID uuid.UUID, in client.CommentInput) (*entity.Comment, error)
}

type TipClient interface {
	AnalyzeTip(ctx context.Context, content string) (*entity.ModerationAnalysis, error)
	CreateTip(ctx context.Context, in client.TipInput) (*entity.Tip, error)
}

func NewPost(c PostClient, author, category string) *Composer[*entity.ForumPost] {
	return New[*entity.ForumPost](&postGateway{c: c, author: author, category: category})
}

// NewComment composes a comment on postID, or a reply when parentID is set.
func NewComment(c CommentClient, postID uuid.UUID, parentID *uuid.UUID) *Composer[*entity.Comment] {
	return New[*entity.Comment](&commentGateway{c: c, postID: postID, parentID: parentID})
}

func NewTip(c TipClient, author, category string) *Composer[*entity.Tip] {
	return New[*entity.Tip](&tipGateway{c: c, author: author, category: category})
}

type postGateway struct {
	c        PostClient
	author   string
	category string
}

func (g *postGateway) Validate(d Draft) error {
	return client.ValidatePost(d.Title, d.Content)
}

func (g *postGateway) Analyze(ctx context.Context, d Draft) (*entity.ModerationAnalysis, error) {
	return g.c.AnalyzePost(ctx, d.Title, d.Content)
}

func (g *postGateway) Suggestion(a *entity.ModerationAnalysis) Draft {
	return Draft{Title: a.SuggestedTitle, Content: a.SuggestedContent}
}

func (g *postGateway) Commit(ctx context.Context, analysisID uuid.UUID, d Draft) (*entity.ForumPost, error) {
	return g.c.CreatePost(ctx, client.PostInput{
		AnalysisID: analysisID,
		Title:      d.Title,
		Content:    d.Content,
		Author:     g.author,
		Category:   g.category,
	})
}

type commentGateway struct {
	c        CommentClient
	postID   uuid.UUID
	parentID *uuid.UUID
}

func (g *commentGateway) Validate(d Draft) error {
	return client.ValidateComment(d.Content)
}

func (g *commentGateway) Analyze(ctx context.Context, d Draft) (*entity.ModerationAnalysis, error) {
	return g.c.AnalyzeComment(ctx, d.Content)
}

func (g *commentGateway) Suggestion(a *entity.ModerationAnalysis) Draft {
	return Draft{Content: rewritten(a)}
}

func (g *commentGateway) Commit(ctx context.Context, analysisID uuid.UUID, d Draft) (*entity.Comment, error) {
	return g.c.CreateComment(ctx, g.postID, client.CommentInput{
		AnalysisID: analysisID,
		Content:    d.Content,
		ParentID:   g.parentID,
	})
}

type tipGateway struct {
	c        TipClient
	author   string
	category string
}

func (g *tipGateway) Validate(d Draft) error {
	return client.ValidateTip(d.Content)
}

func (g *tipGateway) Analyze(ctx context.Context, d Draft) (*entity.ModerationAnalysis, error) {
	return g.c.AnalyzeTip(ctx, d.Content)
}

func (g *tipGateway) Suggestion(a *entity.ModerationAnalysis) Draft {
	return Draft{Content: rewritten(a)}
}

func (g *tipGateway) Commit(ctx context.Context, analysisID uuid.UUID, d Draft) (*entity.Tip, error) {
	return g.c.CreateTip(ctx, client.TipInput{
		AnalysisID: analysisID,
		Content:    d.Content,
		Author:     g.author,
		Category:   g.category,
	})
}

func rewritten(a *entity.ModerationAnalysis) string {
	if a.RewrittenText == nil {
		return ""
	}
	return *a.RewrittenText
}
