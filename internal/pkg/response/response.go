package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 错误码定义
const (
	CodeSuccess          = 0
	CodeParamError       = 1000
	CodeAuthFailed       = 1001
	CodePermissionDenied = 1002
	CodeResourceNotFound = 1003
	CodeQuotaExceeded    = 1004
	CodeDuplicateAction  = 1005
	CodeUpgradeRequired  = 1006
	CodeServerError      = 5000
)

var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeParamError:       "invalid parameters",
	CodeAuthFailed:       "authentication failed",
	CodePermissionDenied: "permission denied",
	CodeResourceNotFound: "resource not found",
	CodeQuotaExceeded:    "usage limit reached",
	CodeDuplicateAction:  "duplicate action",
	CodeUpgradeRequired:  "upgrade required",
	CodeServerError:      "internal server error",
}

// Response 统一响应结构，HTTP 状态码恒为 200
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type PageData struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

// UpgradeData 套餐不支持时返回给客户端的升级提示
type UpgradeData struct {
	Feature     string `json:"feature"`
	CurrentPlan string `json:"current_plan"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: codeMessages[CodeSuccess],
		Data:    data,
	})
}

func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessPage 分页响应
func SuccessPage(c *gin.Context, total int64, page, pageSize int, items interface{}) {
	Success(c, PageData{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

// Error 错误响应，message 为空时使用错误码的默认消息
func Error(c *gin.Context, code int, message string) {
	ErrorWithData(c, code, message, nil)
}

func ErrorWithData(c *gin.Context, code int, message string, data interface{}) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    data,
	})
}

func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

func AuthError(c *gin.Context, message string) {
	Error(c, CodeAuthFailed, message)
}

func PermissionError(c *gin.Context, message string) {
	Error(c, CodePermissionDenied, message)
}

func NotFoundError(c *gin.Context, message string) {
	Error(c, CodeResourceNotFound, message)
}

func QuotaError(c *gin.Context, message string) {
	Error(c, CodeQuotaExceeded, message)
}

func DuplicateError(c *gin.Context, message string) {
	Error(c, CodeDuplicateAction, message)
}

// UpgradeError 当前套餐未开放该功能
func UpgradeError(c *gin.Context, feature, currentPlan string) {
	ErrorWithData(c, CodeUpgradeRequired, "", UpgradeData{
		Feature:     feature,
		CurrentPlan: currentPlan,
	})
}

func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
