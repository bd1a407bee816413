// Package main はIdentity CLIのエントリーポイント。
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/client"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
)

const appName = "identity-cli"

// 終了コード
const (
	exitOK          = 0
	exitError       = 1
	exitInvalid     = 2
	exitUnavailable = 3
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode はエラーの種類から終了コードを決める。
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}

	var validationErr *apperr.ValidationError
	var connErr *client.ConnectionError
	var apiErr *client.APIError
	switch {
	case errors.As(err, &validationErr),
		errors.Is(err, apperr.ErrCarrierNotFound),
		errors.Is(err, apperr.ErrCountryNotFound),
		errors.Is(err, apperr.ErrPresetNotFound),
		errors.Is(err, apperr.ErrUnknownSpoofType),
		errors.Is(err, apperr.ErrUnknownGroup),
		errors.Is(err, apperr.ErrInvalidRequest),
		errors.Is(err, apperr.ErrInvalidIMEI),
		errors.Is(err, apperr.ErrInvalidICCID),
		errors.Is(err, apperr.ErrInvalidIMSI):
		return exitInvalid
	case errors.Is(err, client.ErrCircuitOpen),
		errors.As(err, &connErr):
		return exitUnavailable
	case errors.As(err, &apiErr):
		if apiErr.IsServerError() {
			return exitUnavailable
		}
		return exitInvalid
	default:
		return exitError
	}
}

// initLogger はロガーを初期化する。CLIの出力と混ざらないようにログはwに書く。
func initLogger(w io.Writer, cfg *config.Config) {
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

	handler := slog.NewJSONHandler(w, opts)
	logger := slog.New(handler).With("app", appName)
	slog.SetDefault(logger)
}
