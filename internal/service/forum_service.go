package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
)

type ForumService struct {
	postsRepo    repository.PostsRepositoryI
	commentsRepo repository.CommentsRepositoryI
	moderation   ModerationServiceI
}

func NewForumService(postsRepo repository.PostsRepositoryI, commentsRepo repository.CommentsRepositoryI, moderation ModerationServiceI) *ForumService {
	if postsRepo == nil || commentsRepo == nil {
		log.Fatal("on forum service provided nil repos")
	}
	if moderation == nil {
		log.Fatal("on forum service provided nil moderation service")
	}
	return &ForumService{
		postsRepo:    postsRepo,
		commentsRepo: commentsRepo,
		moderation:   moderation,
	}
}

func (fs *ForumService) ListPosts(ctx context.Context, viewer uuid.UUID) ([]*entity.ForumPost, error) {
	posts, err := fs.postsRepo.List(ctx, viewer)
	if err != nil {
		return nil, errors.New("posts repository error: " + err.Error())
	}
	return posts, nil
}

func (fs *ForumService) GetPost(ctx context.Context, id, viewer uuid.UUID) (*entity.ForumPost, error) {
	post, err := fs.postsRepo.GetByID(ctx, id, viewer)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, err
		}
		return nil, errors.New("posts repository error: " + err.Error())
	}
	return post, nil
}

// CreatePost publishes a post whose title and content were approved by the analysis.
// The approval is spent in the insert transaction; a failed insert leaves it usable for a retry.
func (fs *ForumService) CreatePost(ctx context.Context, req *CreatePostRequest) (*entity.ForumPost, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	err := fs.moderation.Verify(ctx, req.AnalysisID, req.UserID, entity.KindPost, ComposePostText(req.Title, req.Content))
	if err != nil {
		return nil, err
	}
	id, err := fs.postsRepo.Create(ctx, &entity.ForumPost{
		UserID:   req.UserID,
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Category: req.Category,
	}, req.AnalysisID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrApprovalConsumed) {
			return nil, err
		}
		return nil, errors.New("posts repository error: " + err.Error())
	}
	return fs.GetPost(ctx, id, req.UserID)
}

func (fs *ForumService) ReactToPost(ctx context.Context, postID, userID uuid.UUID) (*entity.ReactionState, error) {
	state, err := fs.postsRepo.ToggleReaction(ctx, postID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) {
			return nil, err
		}
		return nil, errors.New("posts repository error: " + err.Error())
	}
	return state, nil
}

func (fs *ForumService) ListComments(ctx context.Context, postID, viewer uuid.UUID) ([]*entity.Comment, error) {
	if _, err := fs.GetPost(ctx, postID, viewer); err != nil {
		return nil, err
	}
	comments, err := fs.commentsRepo.ListByPost(ctx, postID, viewer)
	if err != nil {
		return nil, errors.New("comments repository error: " + err.Error())
	}
	return comments, nil
}

func (fs *ForumService) CreateComment(ctx context.Context, req *CreateCommentRequest) (*entity.Comment, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if _, err := fs.GetPost(ctx, req.PostID, req.UserID); err != nil {
		return nil, err
	}
	if req.ParentID != nil {
		parent, err := fs.commentsRepo.GetByID(ctx, *req.ParentID, req.UserID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrCommentNotFound) {
				return nil, errorvalues.ErrParentCommentNotFound
			}
			return nil, errors.New("comments repository error: " + err.Error())
		}
		if parent.PostID != req.PostID {
			return nil, errorvalues.ErrParentCommentNotFound
		}
	}
	err := fs.moderation.Verify(ctx, req.AnalysisID, req.UserID, entity.KindComment, req.Content)
	if err != nil {
		return nil, err
	}
	id, err := fs.commentsRepo.Create(ctx, &entity.Comment{
		PostID:   req.PostID,
		UserID:   req.UserID,
		Content:  req.Content,
		ParentID: req.ParentID,
	}, req.AnalysisID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrPostNotFound) || errors.Is(err, errorvalues.ErrParentCommentNotFound) ||
			errors.Is(err, errorvalues.ErrApprovalConsumed) {
			return nil, err
		}
		return nil, errors.New("comments repository error: " + err.Error())
	}
	comment, err := fs.commentsRepo.GetByID(ctx, id, req.UserID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCommentNotFound) {
			return nil, err
		}
		return nil, errors.New("comments repository error: " + err.Error())
	}
	return comment, nil
}

func (fs *ForumService) ReactToComment(ctx context.Context, commentID, userID uuid.UUID) (*entity.ReactionState, error) {
	state, err := fs.commentsRepo.ToggleReaction(ctx, commentID, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCommentNotFound) {
			return nil, err
		}
		return nil, errors.New("comments repository error: " + err.Error())
	}
	return state, nil
}
