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

package operation

import (
	"context"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/lfnorm/pkg/log"
	"github.com/walteh/lfnorm/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📊 Result describes a finished directory pass
type Result struct {
	Converted    []string // Paths of files that were rewritten
	Skipped      []string // Names of entries that were not processed
	Modified     int      // Files whose content changed
	Replacements int      // Line endings rewritten across all files
}

// 📄 ConvertFile rewrites the file at path so it contains no CR LF pairs. The
// whole file is read, normalized and checked as UTF-8 before anything is
// written, so a decode failure leaves the file as it was.
func ConvertFile(ctx context.Context, path string) (*text.NormalizeResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, NewError(KindFileIO, path, errors.Errorf("stat: %w", err))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, NewError(KindFileIO, path, errors.Errorf("reading file: %w", err))
	}
	res, err := text.NormalizeLineEndings(ctx, f)
	f.Close()
	if err != nil {
		var decodeErr *text.DecodeError
		if errors.As(err, &decodeErr) {
			return nil, NewError(KindDecode, path, err)
		}
		return nil, NewError(KindFileIO, path, err)
	}

	// written even when unchanged, an unwritable file is an error either way
	if err := os.WriteFile(path, res.ModifiedContent, info.Mode().Perm()); err != nil {
		return nil, NewError(KindFileIO, path, errors.Errorf("writing file: %w", err))
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", path).
		Int("replacements", res.ReplacementCount).
		Bool("modified", res.WasModified).
		Msg("converted file")

	return res, nil
}

// 📁 ConvertDirectory runs ConvertFile on every regular file directly inside
// dir, in listing order. Subdirectories, symlinks and special files are skipped,
// as are entries whose name matches one of the exclude globs. The pass stops at
// the first failing file; the returned Result covers what was done up to then.
func ConvertDirectory(ctx context.Context, dir string, exclude ...string) (*Result, error) {
	logger := log.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NewError(KindPath, dir, errors.Errorf("listing directory: %w", err))
	}

	logger.StartDirectoryOperation(ctx, log.DirectoryOperation{Path: dir, Excludes: exclude})
	defer logger.EndDirectoryOperation(ctx)

	result := &Result{}
	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		skip, reason, err := shouldSkip(entry, exclude)
		if err != nil {
			return result, NewError(KindConfig, path, err)
		}
		if skip {
			result.Skipped = append(result.Skipped, name)
			logger.LogFileOperation(ctx, log.FileOperation{Path: path, Status: reason, IsSkipped: true})
			continue
		}

		logger.LogConverting(ctx, path)

		res, err := ConvertFile(ctx, path)
		if err != nil {
			return result, errors.Errorf("converting %s: %w", name, err)
		}

		result.Converted = append(result.Converted, path)
		result.Replacements += res.ReplacementCount
		status := "unchanged"
		if res.WasModified {
			result.Modified++
			status = "converted"
		}
		logger.LogFileOperation(ctx, log.FileOperation{
			Path:         path,
			Status:       status,
			IsModified:   res.WasModified,
			Replacements: res.ReplacementCount,
		})
	}

	return result, nil
}

// shouldSkip reports whether entry is left alone, with a short reason.
func shouldSkip(entry os.DirEntry, exclude []string) (bool, string, error) {
	if !entry.Type().IsRegular() {
		return true, "not a regular file", nil
	}
	for _, pattern := range exclude {
		matched, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return false, "", errors.Errorf("matching exclude %q: %w", pattern, err)
		}
		if matched {
			return true, "excluded by " + pattern, nil
		}
	}
	return false, "", nil
}
