package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"message_board/internal/metrics"
	"message_board/internal/service"
	"message_board/pkg/optional"
)

const (
	msgNotFound       = "Message not found"
	msgInvalidPayload = "Invalid JSON payload"
	msgInternal       = "Internal server error"
)

// MessageHandler 處理與留言相關的請求
type MessageHandler struct {
	messageService *service.MessageService
	log            zerolog.Logger
}

// NewMessageHandler 創建一個新的 MessageHandler 實例
func NewMessageHandler(messageService *service.MessageService, log zerolog.Logger) *MessageHandler {
	return &MessageHandler{messageService: messageService, log: log}
}

// CreateMessageRequest 兩個欄位都可省略，省略時存成 null
type CreateMessageRequest struct {
	Body     *string `json:"body"`
	Username *string `json:"username"`
}

// UpdateMessageRequest 只允許修改 body
type UpdateMessageRequest struct {
	Body optional.Value[string] `json:"body"`
}

// DeleteMessageResponse 刪除成功時的回應
type DeleteMessageResponse struct {
	DeleteSuccessful bool   `json:"delete_successful"`
	Message          string `json:"message"`
}

// ListMessages 按建立時間返回所有留言
func (h *MessageHandler) ListMessages(c *gin.Context) {
	messages, err := h.messageService.ListMessages(c.Request.Context())
	if err != nil {
		h.internalError(c, err, "list messages")
		return
	}

	c.IndentedJSON(http.StatusOK, messages)
}

// GetMessage 返回單則留言
func (h *MessageHandler) GetMessage(c *gin.Context) {
	id, ok := parseMessageID(c)
	if !ok {
		return
	}

	message, err := h.messageService.GetMessage(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, id, "get message")
		return
	}

	c.IndentedJSON(http.StatusOK, message)
}

// CreateMessage 處理創建新留言的請求
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var input CreateMessageRequest
	if !bindJSON(c, &input) {
		return
	}

	message, err := h.messageService.CreateMessage(c.Request.Context(), service.CreateMessageInput{
		Body:     input.Body,
		Username: input.Username,
	})
	if err != nil {
		h.internalError(c, err, "create message")
		return
	}
	metrics.RecordWrite(metrics.OpCreate)

	c.IndentedJSON(http.StatusCreated, message)
}

// UpdateMessage 處理部分更新，body 缺席時保留原值
func (h *MessageHandler) UpdateMessage(c *gin.Context) {
	id, ok := parseMessageID(c)
	if !ok {
		return
	}

	var input UpdateMessageRequest
	if !bindJSON(c, &input) {
		return
	}

	message, err := h.messageService.UpdateMessage(c.Request.Context(), id, service.UpdateMessageInput{
		Body: input.Body,
	})
	if err != nil {
		h.serviceError(c, err, id, "update message")
		return
	}
	metrics.RecordWrite(metrics.OpUpdate)

	c.IndentedJSON(http.StatusOK, message)
}

// DeleteMessage 永久刪除留言
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	id, ok := parseMessageID(c)
	if !ok {
		return
	}

	if err := h.messageService.DeleteMessage(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, id, "delete message")
		return
	}
	metrics.RecordWrite(metrics.OpDelete)

	c.IndentedJSON(http.StatusOK, DeleteMessageResponse{
		DeleteSuccessful: true,
		Message:          "Message deleted.",
	})
}

// parseMessageID 非整數的 id 視為不存在的留言
func parseMessageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return 0, false
	}
	return uint(id), true
}

// bindJSON 空的請求體等同於 {}
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidPayload})
		return false
	}
	return true
}

func (h *MessageHandler) serviceError(c *gin.Context, err error, id uint, op string) {
	if errors.Is(err, service.ErrMessageNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": msgNotFound})
		return
	}
	h.log.Error().Err(err).Uint("message_id", id).Msg(op)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}

func (h *MessageHandler) internalError(c *gin.Context, err error, op string) {
	h.log.Error().Err(err).Msg(op)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
}
