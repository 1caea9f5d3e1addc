// Copyright 2026 Steunwijzer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/steunwijzer/steunwijzer/ai"
	"github.com/steunwijzer/steunwijzer/ai/openai"
	"github.com/steunwijzer/steunwijzer/catalog"
	"github.com/steunwijzer/steunwijzer/core"
	"github.com/steunwijzer/steunwijzer/prefilter"
	"github.com/steunwijzer/steunwijzer/ragindex"
	"github.com/steunwijzer/steunwijzer/ranking"
	"github.com/urfave/cli/v2"
)

func main() {
	// Optional .env for API keys; missing file is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "steunwijzer",
		Usage: "Municipal subsidy finder for single parents in the Netherlands",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build-index",
				Usage:  "Build the knowledge-corpus embedding index",
				Action: buildIndexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "corpus",
						Aliases:  []string{"c"},
						Usage:    "Directory with .txt/.md knowledge documents",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Output directory for the index files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "chunk-chars",
						Usage: "Chunk window size in characters",
						Value: ragindex.DefaultChunkChars,
					},
					&cli.IntFlag{
						Name:  "chunk-overlap",
						Usage: "Overlap between consecutive chunks in characters",
						Value: ragindex.DefaultChunkOverlap,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of documents embedded concurrently",
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Query the knowledge-corpus embedding index",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "index",
						Aliases:  []string{"i"},
						Usage:    "Directory with the index files",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "embedding-model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Number of chunks to return",
						Value: ragindex.DefaultTopK,
					},
				},
				ArgsUsage: "<query>",
			},
			{
				Name:   "rank",
				Usage:  "Prefilter the catalog and rank candidates for a profile",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Aliases:  []string{"c"},
						Usage:    "Path to the regulation catalog CSV",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "municipality",
						Aliases:  []string{"m"},
						Usage:    "Municipality of the user",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "single-parent",
						Usage: "User is a single parent",
						Value: true,
					},
					&cli.IntFlag{
						Name:  "children",
						Usage: "Number of children under 18",
					},
					&cli.Float64Flag{
						Name:  "income",
						Usage: "Net monthly income in EUR",
					},
					&cli.StringFlag{
						Name:  "ranking-host",
						Usage: "Ranking service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:     "ranking-model",
						Usage:    "Ranking model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API key for the ranking service",
						EnvVars: []string{"STEUNWIJZER_API_KEY"},
					},
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Short-list length",
						Value: ranking.DefaultTopK,
					},
					&cli.IntFlag{
						Name:  "max-candidates",
						Usage: "Maximum candidates sent to the ranking model",
						Value: prefilter.DefaultOptions().MaxCandidates,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func buildIndexCommand(c *cli.Context) error {
	ctx := context.Background()

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Use dummy ranking values (not needed for index building)
		ai.WithRankingHost(c.String("embedding-host")),
		ai.WithRankingModel("dummy"),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	chunker, err := ragindex.NewChunker(c.Int("chunk-chars"), c.Int("chunk-overlap"))
	if err != nil {
		return err
	}

	opts := []ragindex.BuilderOption{ragindex.WithChunker(chunker)}
	if c.IsSet("pool-size") {
		opts = append(opts, ragindex.WithPoolSize(c.Int("pool-size")))
	}

	builder, err := ragindex.NewBuilder(embedder, opts...)
	if err != nil {
		return err
	}

	docs, err := ragindex.LoadDocuments(c.String("corpus"))
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Corpus: %s (%d documents)\n", c.String("corpus"), len(docs))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	index, err := builder.Build(ctx, docs)
	if err != nil {
		return fmt.Errorf("index build failed: %w", err)
	}

	if err := ragindex.Save(index, c.String("index")); err != nil {
		return fmt.Errorf("failed to save index: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Saved index with %d chunks (dim %d) to %s\n",
		index.Len(), index.Dim(), c.String("index"))
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	aiConfig := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		// Use dummy ranking values (not needed for search)
		ai.WithRankingHost(c.String("embedding-host")),
		ai.WithRankingModel("dummy"),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	embedder, err := openai.NewEmbedder(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	retriever, err := ragindex.OpenRetriever(c.String("index"), embedder)
	if err != nil {
		return err
	}

	hits, err := retriever.Retrieve(ctx, query, c.Int("top-k"))
	if err != nil {
		return err
	}

	return printJSON(hits)
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	store, err := catalog.Load(c.String("catalog"))
	if err != nil {
		return err
	}

	profile := &core.UserProfile{
		IsSingleParent: c.Bool("single-parent"),
		Municipality:   c.String("municipality"),
	}
	if c.IsSet("children") {
		children := c.Int("children")
		profile.ChildrenU18 = &children
	}
	if c.IsSet("income") {
		income := c.Float64("income")
		profile.NetIncomeMonthlyEUR = &income
	}

	pfOpts := prefilter.DefaultOptions()
	pfOpts.MaxCandidates = c.Int("max-candidates")

	rows, suggestions := prefilter.Prefilter(store, *profile, pfOpts)
	if len(rows) == 0 {
		if len(suggestions) > 0 {
			fmt.Fprintf(os.Stderr, "No regulations found for %q. Did you mean: %s?\n",
				profile.Municipality, strings.Join(suggestions, ", "))
			return nil
		}
		fmt.Fprintf(os.Stderr, "No matching regulations found for %q.\n", profile.Municipality)
		return nil
	}

	aiConfig := ai.NewConfig(
		ai.WithRankingHost(c.String("ranking-host")),
		ai.WithRankingModel(c.String("ranking-model")),
		ai.WithAPIKey(c.String("api-key")),
		// Use dummy embedding values (not needed for ranking)
		ai.WithEmbeddingHost(c.String("ranking-host")),
		ai.WithEmbeddingModel("dummy"),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	completer, err := openai.NewCompleter(aiConfig)
	if err != nil {
		return fmt.Errorf("failed to create completer: %w", err)
	}

	oracle, err := ranking.NewOracle(completer)
	if err != nil {
		return err
	}

	candidates := prefilter.Project(rows)
	fmt.Fprintf(os.Stderr, "Prefiltered to %d candidates\n", len(candidates))

	ranked, err := oracle.Rank(ctx, candidates, profile, c.Int("top-k"))
	if err != nil {
		return err
	}

	return printJSON(ranked)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
