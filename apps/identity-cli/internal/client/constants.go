package client

// HTTPヘッダ名
const (
	HeaderTraceID     = "X-Trace-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
)

// Content-Type
const (
	ContentTypeJSON = "application/json"
)

// APIパス
const (
	pathGenerate = "/api/v1/generate/"
	pathBundles  = "/api/v1/bundles/"
	pathProfiles = "/api/v1/profiles"
)
