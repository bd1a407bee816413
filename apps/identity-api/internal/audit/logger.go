// Package audit はプロファイル操作の監査ログ機能を提供する。
package audit

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Operation は監査ログの操作種別を表す。
type Operation string

const (
	// OpCreate はプロファイル作成
	OpCreate Operation = "create"
	// OpDelete はプロファイル削除
	OpDelete Operation = "delete"
	// OpRegenerateField は単一フィールドの再生成
	OpRegenerateField Operation = "regenerate_field"
	// OpRegenerateGroup は相関グループ全体の再生成
	OpRegenerateGroup Operation = "regenerate_group"
	// OpChangeReference は参照オブジェクトを指定したグループ再生成
	OpChangeReference Operation = "change_reference"
	// OpEnable は識別子の有効化・無効化
	OpEnable Operation = "enable"
)

// Entry は監査ログエントリを表す。
type Entry struct {
	Time      string    `json:"time"`                // RFC3339形式のタイムスタンプ
	Level     string    `json:"level"`               // ログレベル（常に"INFO"）
	App       string    `json:"app"`                 // アプリケーション名
	EventID   string    `json:"event_id"`            // イベントID（常に"AUDIT_LOG"）
	Msg       string    `json:"msg"`                 // メッセージ
	TraceID   string    `json:"trace_id,omitempty"`  // トレース識別子
	Operation Operation `json:"operation"`           // 操作種別
	ProfileID string    `json:"profile_id"`          // 対象プロファイル
	Target    string    `json:"target,omitempty"`    // 対象の識別子種別または相関グループ
	Reference string    `json:"reference,omitempty"` // 確定した参照キー
	Details   string    `json:"details,omitempty"`   // 追加詳細情報
}

// Logger は監査ログをJSON Lines形式で出力する。
type Logger struct {
	writer io.Writer
	app    string
	now    func() time.Time
	mu     sync.Mutex
}

// NewLogger は標準出力に書き込むLoggerを生成する。
func NewLogger(app string) *Logger {
	return NewLoggerWithWriter(os.Stdout, app)
}

// NewLoggerWithWriter は指定されたWriterを使用するLoggerを生成する。
func NewLoggerWithWriter(writer io.Writer, app string) *Logger {
	return &Logger{
		writer: writer,
		app:    app,
		now:    time.Now,
	}
}

// Log は監査ログエントリを出力する。
func (l *Logger) Log(traceID string, op Operation, profileID, target, reference, msg string) {
	l.LogWithDetails(traceID, op, profileID, target, reference, msg, "")
}

// LogWithDetails は詳細情報付きで監査ログエントリを出力する。
func (l *Logger) LogWithDetails(traceID string, op Operation, profileID, target, reference, msg, details string) {
	entry := Entry{
		Time:      l.now().UTC().Format(time.RFC3339),
		Level:     "INFO",
		App:       l.app,
		EventID:   "AUDIT_LOG",
		Msg:       msg,
		TraceID:   traceID,
		Operation: op,
		ProfileID: profileID,
		Target:    target,
		Reference: reference,
		Details:   details,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.writer.Write(append(data, '\n'))
}

// LogCreate はプロファイル作成のログを出力する。
func (l *Logger) LogCreate(traceID, profileID string) {
	l.Log(traceID, OpCreate, profileID, "", "", "profile created")
}

// LogDelete はプロファイル削除のログを出力する。
func (l *Logger) LogDelete(traceID, profileID string) {
	l.Log(traceID, OpDelete, profileID, "", "", "profile deleted")
}

// LogRegenerateField は単一フィールド再生成のログを出力する。
func (l *Logger) LogRegenerateField(traceID, profileID, spoofType, reference string) {
	l.Log(traceID, OpRegenerateField, profileID, spoofType, reference, "field regenerated")
}

// LogRegenerateGroup はグループ再生成のログを出力する。
// explicitがtrueの場合は利用者が参照オブジェクトを指定した再生成として記録する。
func (l *Logger) LogRegenerateGroup(traceID, profileID, group, reference string, explicit bool) {
	op, msg := OpRegenerateGroup, "group regenerated"
	if explicit {
		op, msg = OpChangeReference, "group reference changed"
	}
	l.Log(traceID, op, profileID, group, reference, msg)
}

// LogEnable は有効フラグ変更のログを出力する。
func (l *Logger) LogEnable(traceID, profileID, spoofType string, enabled bool) {
	details := "disabled"
	if enabled {
		details = "enabled"
	}
	l.LogWithDetails(traceID, OpEnable, profileID, spoofType, "", "identifier "+details, details)
}
