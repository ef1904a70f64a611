package dto

import (
	"github.com/qs3c/soultria_server/internal/library"
)

// WisdomListRequest 智慧库列表参数
type WisdomListRequest struct {
	Category string `form:"category,default=All"`
	Query    string `form:"q"`
	Saved    bool   `form:"saved"`
}

// WisdomItemView 条目及当前用户的状态
type WisdomItemView struct {
	library.Item
	Saved  bool `json:"saved"`
	Locked bool `json:"locked"`
}

// CollectionView 合集及当前用户的状态
type CollectionView struct {
	library.Collection
	Locked bool `json:"locked"`
}

// WisdomListResponse 智慧库列表
type WisdomListResponse struct {
	Categories  []string         `json:"categories"`
	Items       []WisdomItemView `json:"items"`
	Collections []CollectionView `json:"collections"`
}

// ToggleSavedResponse 收藏切换结果
type ToggleSavedResponse struct {
	ItemID string `json:"item_id"`
	Saved  bool   `json:"saved"`
}
