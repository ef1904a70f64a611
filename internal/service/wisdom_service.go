package service

import (
	"context"
	"errors"

	"github.com/qs3c/soultria_server/internal/entitlement"
	"github.com/qs3c/soultria_server/internal/library"
	"github.com/qs3c/soultria_server/internal/model/dto"
	"github.com/qs3c/soultria_server/internal/repository"
)

var ErrWisdomItemNotFound = errors.New("wisdom item not found")

type WisdomService struct {
	repo *repository.WisdomRepository
	ents *EntitlementService
}

func NewWisdomService(repo *repository.WisdomRepository, ents *EntitlementService) *WisdomService {
	return &WisdomService{repo: repo, ents: ents}
}

// List 智慧库列表，标注收藏状态和是否需要升级
func (s *WisdomService) List(ctx context.Context, userID int64, req *dto.WisdomListRequest) (*dto.WisdomListResponse, error) {
	savedIDs, err := s.repo.ListItemIDs(userID)
	if err != nil {
		return nil, err
	}
	saved := make(map[string]bool, len(savedIDs))
	for _, id := range savedIDs {
		saved[id] = true
	}

	premium := s.ents.Store(userID).CanAccessWisdomLibrary(ctx, entitlement.WisdomPremium)

	items := make([]dto.WisdomItemView, 0)
	for _, it := range library.Filter(req.Category, req.Query) {
		if req.Saved && !saved[it.ID] {
			continue
		}
		items = append(items, dto.WisdomItemView{
			Item:   it,
			Saved:  saved[it.ID],
			Locked: it.Premium && !premium,
		})
	}

	collections := make([]dto.CollectionView, 0, len(library.Collections()))
	for _, c := range library.Collections() {
		collections = append(collections, dto.CollectionView{
			Collection: c,
			Locked:     c.Premium && !premium,
		})
	}

	return &dto.WisdomListResponse{
		Categories:  library.Categories,
		Items:       items,
		Collections: collections,
	}, nil
}

// Access 打开条目或合集，高级内容需要完整智慧库权益
func (s *WisdomService) Access(ctx context.Context, userID int64, itemID string) (*library.Item, error) {
	it, ok := library.FindItem(itemID)
	if !ok {
		return nil, ErrWisdomItemNotFound
	}

	content := entitlement.WisdomBasic
	if it.Premium {
		content = entitlement.WisdomPremium
	}
	if err := s.ents.RequireWisdom(ctx, userID, content); err != nil {
		return nil, err
	}
	return &it, nil
}

// ToggleSaved 切换收藏状态
func (s *WisdomService) ToggleSaved(userID int64, itemID string) (*dto.ToggleSavedResponse, error) {
	if _, ok := library.FindItem(itemID); !ok {
		return nil, ErrWisdomItemNotFound
	}

	exists, err := s.repo.Exists(userID, itemID)
	if err != nil {
		return nil, err
	}
	if exists {
		err = s.repo.Remove(userID, itemID)
	} else {
		err = s.repo.Add(userID, itemID)
	}
	if err != nil {
		return nil, err
	}
	return &dto.ToggleSavedResponse{ItemID: itemID, Saved: !exists}, nil
}

// Saved 收藏的条目 ID
func (s *WisdomService) Saved(userID int64) ([]string, error) {
	ids, err := s.repo.ListItemIDs(userID)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
