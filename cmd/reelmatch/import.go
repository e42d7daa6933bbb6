// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
)

func newImportCmd(c *cli) *cobra.Command {
	var catalogPath, matrixPath, outPath string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a CSV catalog and JSON matrix into a DuckDB dataset",
		Long: `Validate a catalog CSV and similarity matrix JSON, then write them to a new
DuckDB file usable with DATA_SOURCE=duckdb. Paths default to the configured
files source. An existing output file is never overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if catalogPath == "" {
				catalogPath = c.cfg.Data.CatalogPath
			}
			if matrixPath == "" {
				matrixPath = c.cfg.Data.MatrixPath
			}
			if outPath == "" {
				outPath = c.cfg.Data.DuckDBPath
			}

			logger := logging.WithComponent("import")
			loader := &dataset.FileLoader{CatalogPath: catalogPath, MatrixPath: matrixPath}
			index, err := dataset.Load(cmd.Context(), loader, logger)
			if err != nil {
				return err
			}

			if err := dataset.ExportDuckDB(cmd.Context(), outPath, index); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d titles into %s\n", index.Len(), outPath)
			return err
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog CSV path (default: data.catalog_path)")
	cmd.Flags().StringVar(&matrixPath, "matrix", "", "similarity matrix JSON path (default: data.matrix_path)")
	cmd.Flags().StringVar(&outPath, "out", "", "DuckDB output path (default: data.duckdb_path)")
	return cmd
}
