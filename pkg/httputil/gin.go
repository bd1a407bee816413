package httputil

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// RetryAfterSeconds は503応答のRetry-Afterヘッダー値（秒）。
// プロファイルストアの再接続を待つ間、クライアントに再試行を遅らせる。
const RetryAfterSeconds = 5

// WriteError はProblemDetailをGinレスポンスとして書き込む。
// instanceが空の場合はリクエストパスを設定し、503の場合はRetry-Afterを付ける。
func WriteError(c *gin.Context, problem *ProblemDetail) {
	p := prepare(c, problem)
	c.JSON(p.Status, p)
}

// AbortWithError はProblemDetailをGinレスポンスとして書き込み、リクエスト処理を中断する。
func AbortWithError(c *gin.Context, problem *ProblemDetail) {
	p := prepare(c, problem)
	c.AbortWithStatusJSON(p.Status, p)
}

// WriteFromError はアプリケーションエラーをFromErrorで変換して書き込む。
func WriteFromError(c *gin.Context, err error) {
	WriteError(c, FromError(err))
}

// prepare はヘッダーを設定し、instanceを補ったコピーを返す。引数のproblemは変更しない。
func prepare(c *gin.Context, problem *ProblemDetail) *ProblemDetail {
	p := *problem
	if p.Instance == "" && c.Request != nil && c.Request.URL != nil {
		p.Instance = c.Request.URL.Path
	}
	c.Header("Content-Type", ContentType)
	if p.Status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}
	return &p
}
