package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/apperr"
	"github.com/astrixforge/Device-Masker-sub000/pkg/model"
)

// Row は1件分の相関グループ一式。
type Row map[model.SpoofType]string

// Options はCollectの実行条件。
type Options struct {
	Count     int     // 取得件数
	Workers   int     // 同時実行数（1未満は1として扱う）
	RateLimit float64 // 秒間の取得数（0なら無制限）
}

// Collect はsrcからopts.Count件のバンドルを並行して取得し、番号順に返す。
// いずれかの取得に失敗した時点で残りを打ち切り、最初のエラーを返す。
func Collect(ctx context.Context, src Source, g model.CorrelationGroup, opts Options) ([]Row, error) {
	if opts.Count < 1 || opts.Count > config.MaxExportRows {
		return nil, apperr.NewValidationError("count", fmt.Sprintf("must be between 1 and %d", config.MaxExportRows))
	}
	workers := max(opts.Workers, 1)

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), workers)
	}

	rows := make([]Row, opts.Count)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range rows {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			if limiter != nil {
				if err := limiter.Wait(egCtx); err != nil {
					return err
				}
			}
			values, err := src.Bundle(egCtx, g)
			if err != nil {
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			rows[i] = values
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// WriteCSV はrowsをCSVで書き出す。
// 列は番号と、グループに属する識別子種別の定義順。
func WriteCSV(w io.Writer, g model.CorrelationGroup, rows []Row) error {
	types := g.Types()
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(types)+1)
	header = append(header, "index")
	for _, t := range types {
		header = append(header, string(t))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(header))
	for i, row := range rows {
		record[0] = strconv.Itoa(i + 1)
		for j, t := range types {
			record[j+1] = row[t]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
