// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	switch format {
	case formatTable, formatJSON:
		return nil
	default:
		return fmt.Errorf("invalid --format %q (want %s or %s)", format, formatTable, formatJSON)
	}
}

func newTitlesCmd(c *cli) *cobra.Command {
	var (
		prefix string
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "titles",
		Short: "List catalog titles",
		Long:  "List catalog titles in catalog order, or titles starting with --prefix (case-insensitive).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}

			engine, err := newEngine(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}

			titles := engine.Index().Catalog().Titles()
			if prefix != "" {
				trie := cache.NewTrieWithOptions(false, limit)
				for _, item := range engine.Index().Catalog().Items() {
					trie.InsertWithData(item.Title, item.Index)
				}
				matches := trie.AutocompleteWithLimit(prefix, limit)
				titles = make([]string, len(matches))
				for i, m := range matches {
					titles[i] = m.Value
				}
			}

			return writeTitles(cmd.OutOrStdout(), format, titles)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "only titles starting with this prefix")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum prefix matches")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	return cmd
}

func writeTitles(w io.Writer, format string, titles []string) error {
	if format == formatJSON {
		return writeJSON(w, models.TitlesResponse{Total: len(titles), Titles: titles})
	}
	for _, t := range titles {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func newRecommendCmd(c *cli) *cobra.Command {
	var (
		k       int
		format  string
		posters bool
	)

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Recommend titles similar to <title>",
		Long: `Print the k titles most similar to <title>. The title must match a catalog
entry exactly. Rows beyond the end of the catalog are shown as placeholders.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if cmd.Flags().Changed("k") && k < 1 {
				return fmt.Errorf("-k must be at least 1, got %d", k)
			}
			if maxK := c.cfg.Recommend.MaxK; k > maxK {
				return fmt.Errorf("-k must be at most %d, got %d", maxK, k)
			}

			engine, err := newEngine(cmd.Context(), c.cfg)
			if err != nil {
				return err
			}

			resp, err := engine.Recommend(cmd.Context(), recommend.Request{Title: args[0], K: k})
			if err != nil {
				return err
			}

			items := make([]models.RecommendationItem, len(resp.Items))
			ids := make([]string, len(resp.Items))
			for i, rec := range resp.Items {
				items[i] = models.RecommendationItem{
					Rank:        i + 1,
					Title:       rec.Title,
					ExternalID:  rec.ExternalID,
					Score:       rec.Score,
					Placeholder: rec.Placeholder,
				}
				ids[i] = rec.ExternalID
			}

			if posters && c.cfg.Poster.Enabled {
				svc, err := poster.New(&c.cfg.Poster, logging.WithComponent("poster"))
				if err != nil {
					return err
				}
				defer svc.Close() //nolint:errcheck // read-mostly cache
				for i, u := range poster.ResolveAll(cmd.Context(), svc, ids) {
					items[i].PosterURL = u
				}
			}

			return writeRecommendations(cmd.OutOrStdout(), format, models.RecommendationsResponse{
				Query:        resp.Title,
				K:            resp.Metadata.K,
				Placeholders: resp.Metadata.Placeholders,
				Items:        items,
			})
		},
	}

	cmd.Flags().IntVarP(&k, "k", "k", 0, "number of recommendations (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table or json")
	cmd.Flags().BoolVar(&posters, "posters", false, "resolve TMDB poster URLs (requires TMDB_ENABLED)")
	return cmd
}

func writeRecommendations(w io.Writer, format string, resp models.RecommendationsResponse) error {
	if format == formatJSON {
		return writeJSON(w, resp)
	}

	withPosters := false
	for _, it := range resp.Items {
		if it.PosterURL != "" {
			withPosters = true
			break
		}
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	header := []string{"RANK", "TITLE", "ID", "SCORE"}
	if withPosters {
		header = append(header, "POSTER")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, it := range resp.Items {
		score := strconv.FormatFloat(it.Score, 'f', 4, 64)
		id := it.ExternalID
		if it.Placeholder {
			score, id = "-", "-"
		}
		row := []string{strconv.Itoa(it.Rank), it.Title, id, score}
		if withPosters {
			row = append(row, it.PosterURL)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
