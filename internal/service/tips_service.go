package service

import (
	"context"
	"errors"
	"log"

	errorvalues "github.com/limbo/tendril/internal/error_values"
	"github.com/limbo/tendril/internal/repository"
	"github.com/limbo/tendril/pkg/entity"
)

type TipsService struct {
	repo       repository.TipsRepositoryI
	moderation ModerationServiceI
}

func NewTipsService(tipsRepo repository.TipsRepositoryI, moderation ModerationServiceI) *TipsService {
	if tipsRepo == nil {
		log.Fatal("provided nil tipsRepo")
	}
	if moderation == nil {
		log.Fatal("on tips service provided nil moderation service")
	}
	return &TipsService{
		repo:       tipsRepo,
		moderation: moderation,
	}
}

func (ts *TipsService) ListTips(ctx context.Context) ([]*entity.Tip, error) {
	tips, err := ts.repo.List(ctx)
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tips, nil
}

func (ts *TipsService) FeaturedTips(ctx context.Context) ([]*entity.Tip, error) {
	tips, err := ts.repo.ListFeatured(ctx)
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tips, nil
}

func (ts *TipsService) RandomTip(ctx context.Context) (*entity.Tip, error) {
	tip, err := ts.repo.Random(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNoTips) {
			return nil, err
		}
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tip, nil
}

// CreateTip follows the same analyze-then-commit protocol as posts and comments.
func (ts *TipsService) CreateTip(ctx context.Context, req *CreateTipRequest) (*entity.Tip, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateStruct(*req); err != nil {
		return nil, err
	}
	if err := ts.moderation.Verify(ctx, req.AnalysisID, req.UserID, entity.KindTip, req.Content); err != nil {
		return nil, err
	}
	author := req.Author
	if author == "" {
		author = "Community Member"
	}
	category := req.Category
	if category == "" {
		category = "General"
	}
	id, err := ts.repo.Create(ctx, &entity.Tip{
		Content:  req.Content,
		Author:   author,
		Category: category,
	}, req.AnalysisID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrApprovalConsumed) {
			return nil, err
		}
		return nil, errors.New("tips repository error: " + err.Error())
	}
	tip, err := ts.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("tips repository error: " + err.Error())
	}
	return tip, nil
}
