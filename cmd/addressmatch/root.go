// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
	"github.com/TFMV/CredCoreMatch/pkg/config"
	"github.com/TFMV/CredCoreMatch/pkg/db"
	"github.com/TFMV/CredCoreMatch/pkg/utils"
)

// app holds flag values and the state built from them before a command runs
type app struct {
	configPath string
	refsPath   string
	source     string
	threshold  float64
	topN       int
	workers    int
	logLevel   string

	cfg     *config.Config
	logger  *utils.Logger
	matcher *matcher.Matcher
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "addressmatch",
		Short: "Validate free-form addresses against reference addresses",
		Long: `addressmatch scores free-form addresses against a set of reference
addresses using the Jaccard index of their normalized word sets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to the YAML config file")
	flags.StringVar(&a.refsPath, "refs", "", "reference address file (.csv, .yaml or .yml)")
	flags.StringVar(&a.source, "source", "", "reference source: file or postgres")
	flags.Float64Var(&a.threshold, "threshold", matcher.DefaultThreshold, "inclusive similarity needed for a match")
	flags.IntVar(&a.topN, "top-n", matcher.DefaultTopN, "number of ranked matches to return")
	flags.IntVar(&a.workers, "workers", 0, "concurrent workers for bulk validation")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info or error")

	rootCmd.AddCommand(a.similarityCmd())
	rootCmd.AddCommand(a.validateCmd())
	rootCmd.AddCommand(a.bulkCmd())

	return rootCmd
}

// setup loads the config file and lets explicitly set flags override it
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.LoadConfig(a.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("refs") {
		cfg.References.File = a.refsPath
	}
	if flags.Changed("source") {
		cfg.References.Source = a.source
	}
	if flags.Changed("threshold") {
		cfg.Matcher.Threshold = &a.threshold
	}
	if flags.Changed("top-n") {
		cfg.Matcher.TopN = a.topN
	}
	if flags.Changed("workers") {
		cfg.Matcher.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level, err := utils.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.logger = utils.NewLogger(cmd.ErrOrStderr(), "addressmatch ", level)

	m, err := matcher.New(cfg.MatcherOptions())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.matcher = m
	a.logger.Debug("Matcher ready: threshold=%v top_n=%d", m.Threshold(), m.TopN())
	return nil
}

// loadReferences reads the configured source and keeps the active records
func (a *app) loadReferences(ctx context.Context) ([]matcher.ReferenceAddress, error) {
	var refs []matcher.ReferenceAddress

	switch a.cfg.References.Source {
	case config.SourcePostgres:
		pool, err := db.NewConnection(ctx, a.cfg.DBCreds)
		if err != nil {
			return nil, err
		}
		defer pool.Close()

		refs, err = db.LoadActiveReferences(ctx, pool, a.cfg.DBCreds.Table)
		if err != nil {
			return nil, err
		}
	default:
		if a.cfg.References.File == "" {
			return nil, fmt.Errorf("no reference file: set --refs or references.file")
		}
		var err error
		refs, err = utils.LoadReferences(a.cfg.References.File)
		if err != nil {
			return nil, err
		}
	}

	active := matcher.ActiveReferences(refs)
	a.logger.Info("Loaded %d reference addresses (%d active)", len(refs), len(active))
	return active, nil
}
