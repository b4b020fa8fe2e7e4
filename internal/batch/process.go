package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/myusername/pbp-indicators/pkg/aggregator"
	"github.com/myusername/pbp-indicators/pkg/loader"
	"github.com/myusername/pbp-indicators/pkg/models"
)

// GameProcessor returns a ProcessFunc that loads a game file and aggregates it
func GameProcessor(agg *aggregator.Aggregator) ProcessFunc {
	return func(ctx context.Context, path string) (*models.GameResult, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		game, err := loader.LoadGame(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}

		result, err := agg.Aggregate(game.HomeTeam, game.AwayTeam, game.Records)
		if err != nil {
			return nil, fmt.Errorf("aggregate %s: %w", path, err)
		}
		result.Source = path

		if result.Unmatched > 0 {
			slog.Warn("Records with unknown team label counted as away",
				"path", path, "unmatched", result.Unmatched, "away", game.AwayTeam)
		}
		slog.Debug("Game processed", "path", path, "records", len(game.Records), "skipped", result.Skipped)
		return result, nil
	}
}
