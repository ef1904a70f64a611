package dto

// CreateJournalRequest 写日记
type CreateJournalRequest struct {
	Content  string   `json:"content" binding:"required,max=10000"`
	Emotions []string `json:"emotions" binding:"omitempty,max=10,dive,max=50"`
}

// JournalListRequest 日记列表参数
type JournalListRequest struct {
	Type string `form:"type,default=all" binding:"omitempty,oneof=all manual meditation"`
}

// EmotionCount 情绪出现次数
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// JournalPatternsResponse 情绪模式
type JournalPatternsResponse struct {
	TotalEntries int64          `json:"total_entries"`
	Patterns     []EmotionCount `json:"patterns"`
}
