// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 這個包包含跨域（CORS）、請求日誌與 Prometheus 指標等跨請求的功能。
package middleware
