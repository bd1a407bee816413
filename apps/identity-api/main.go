// Package main はIdentity APIのエントリーポイント。
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/audit"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/handler"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/lock"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/server"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/store"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-api/internal/usecase"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
	"github.com/astrixforge/Device-Masker-sub000/pkg/valkey"
)

const appName = "identity-api"

func main() {
	// 1. 設定読み込み
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// 2. ロガー初期化
	initLogger(cfg)

	slog.Info("starting identity-api",
		"listen_addr", cfg.ListenAddr,
		"log_level", cfg.LogLevel,
		"refdata_path", cfg.RefDataPath,
	)

	// 3. 参照データ読み込み
	reg, err := loadRegistry(cfg.RefDataPath)
	if err != nil {
		slog.Error("failed to load reference data", "event_id", "CONFIG_ERR", "error", err)
		os.Exit(1)
	}

	// 4. Valkey接続
	opts := valkey.DefaultOptions().
		WithAddr(cfg.RedisAddr()).
		WithPassword(cfg.RedisPass)
	valkeyClient, err := valkey.NewClient(opts)
	if err != nil {
		slog.Error("failed to connect to Valkey", "event_id", "VALKEY_CONN_ERR", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	slog.Info("connected to Valkey", "addr", cfg.RedisAddr())

	// 5. 監査ログ
	auditWriter, closeAudit, err := openAuditLog(cfg.AuditLogPath)
	if err != nil {
		slog.Error("failed to open audit log", "path", cfg.AuditLogPath, "error", err)
		os.Exit(1)
	}
	defer closeAudit()

	// 6. 依存オブジェクト生成
	eng := engine.New(reg, generator.NewRand())
	profileStore := store.NewProfileStore(valkeyClient)
	auditLogger := audit.NewLoggerWithWriter(auditWriter, appName)
	masker := logging.NewMasker(cfg.LogMaskIdentifiers)

	// ユースケース
	identityUseCase := usecase.NewIdentityUseCase(eng)
	profileUseCase := usecase.NewProfileUseCase(profileStore, lock.NewKeyed(), auditLogger, eng, masker)

	// ハンドラー
	h := handler.NewHandler(identityUseCase, profileUseCase, func(ctx context.Context) bool {
		return valkey.Healthy(ctx, valkeyClient)
	})

	// 7. サーバー起動
	srv := server.New(cfg, h)

	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// 8. シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	slog.Info("server stopped")
}

// initLogger はロガーを初期化する。
func initLogger(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToUpper(cfg.LogLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler).With("app", appName)
	slog.SetDefault(logger)
}

// loadRegistry は組み込み参照データにYAMLファイルを重ねたRegistryを構築する。
func loadRegistry(path string) (*refdata.Registry, error) {
	reg, err := refdata.LoadRegistry(path)
	if err != nil {
		return nil, err
	}
	if path != "" {
		slog.Info("reference data overlay loaded",
			"path", path,
			"carriers", len(reg.Carriers()),
			"presets", len(reg.Presets()),
		)
	}
	return reg, nil
}

// openAuditLog は監査ログの出力先を開く。パスが空の場合は標準出力を使う。
func openAuditLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
