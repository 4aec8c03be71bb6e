// Copyright 2025 walteh LLC
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
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/lfnorm/cmd/lfnorm/opts"
	"github.com/walteh/lfnorm/pkg/config"
	"github.com/walteh/lfnorm/pkg/log"
	"github.com/walteh/lfnorm/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the parsed command line flags
type rootFlags struct {
	configFile string
	exclude    []string
	debug      bool
}

// NewCommand creates the lfnorm root command
func NewCommand(stdout, stderr io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "lfnorm <folder_name>",
		Short: "Rewrite CR LF line endings to LF in a directory's files",
		Long: `lfnorm rewrites every regular file directly inside a folder so that each
CR LF pair becomes a single LF. Subdirectories and symlinks are left alone.
Files are rewritten in place, no backups are made.`,
		Version:       GetVersionInfo().Version,
		Args:          exactArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ro, err := newRootOpts(cmd.Context(), flags, args[0], stdout, stderr)
			if err != nil {
				return err
			}

			ctx := ro.ZLog.WithContext(cmd.Context())
			ctx = log.NewContext(ctx, ro.Logger)

			op := operation.NewConvertOperation(operation.Options{
				Directory: ro.Directory,
				Exclude:   ro.Config.Exclude,
			})

			if err := operation.NewRunner(&ro.ZLog).Run(ctx, op); err != nil {
				return err
			}

			res := op.Result()
			ro.ZLog.Info().
				Int("converted", len(res.Converted)).
				Int("modified", res.Modified).
				Int("skipped", len(res.Skipped)).
				Msg("done")
			return nil
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(FormatVersion())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return operation.NewError(operation.KindUsage, "", err)
	})
	addRootFlags(cmd, flags)

	return cmd
}

// exactArgs requires a single folder argument
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return operation.NewError(operation.KindUsage, "", errors.Errorf("expected 1 argument, got %d", len(args)))
	}
	return nil
}

// addRootFlags adds flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "", "config file path (.yaml, .json, .hcl or .lfnormrc)")
	cmd.Flags().StringArrayVarP(&flags.exclude, "exclude", "e", nil, "glob of entry names to leave alone, may be repeated")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "enable debug logging")
}

// newRootOpts resolves config, flags and the target directory
func newRootOpts(ctx context.Context, flags *rootFlags, folder string, stdout, stderr io.Writer) (*opts.RootOpts, error) {
	cfg := config.Default()
	if flags.configFile != "" {
		loaded, err := config.LoadConfig(ctx, flags.configFile)
		if err != nil {
			return nil, operation.NewError(operation.KindConfig, flags.configFile, err)
		}
		cfg = loaded
	}

	cfg.Exclude = append(cfg.Exclude, flags.exclude...)
	if flags.debug {
		cfg.LogLevel = zerolog.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, operation.NewError(operation.KindConfig, cfg.Location(), err)
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, operation.NewError(operation.KindConfig, cfg.Location(), err)
	}
	zlog := setupLogging(stderr, level)

	dir, err := filepath.Abs(folder)
	if err != nil {
		return nil, operation.NewError(operation.KindPath, folder, errors.Errorf("resolving folder: %w", err))
	}

	zlog.Debug().Str("config", cfg.String()).Str("directory", dir).Msg("resolved options")

	return &opts.RootOpts{
		Config:    cfg,
		Directory: dir,
		Logger:    log.New(stdout, zlog),
		ZLog:      zlog,
	}, nil
}

// setupLogging builds the diagnostic logger, always on stderr so stdout stays
// one line per converted file
func setupLogging(stderr io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()
}
