// Package api 處理 HTTP 請求路由。
//
// handlers 子包負責將 HTTP 請求轉換為留言服務的調用，並將結果序列化為 JSON 響應。
package api
