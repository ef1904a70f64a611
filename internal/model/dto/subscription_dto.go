package dto

// UpgradeRequest 切换套餐
type UpgradeRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}
