package service

import "errors"

// 業務層通用錯誤，handler 依錯誤類型映射到 HTTP 狀態碼
var (
	ErrMessageNotFound = errors.New("message not found")
)
