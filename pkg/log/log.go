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

package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎯 FileOperation records what happened to a single directory entry
type FileOperation struct {
	Path         string // File path
	Status       string // converted, unchanged, skipped
	IsModified   bool   // Whether the content changed
	IsSkipped    bool   // Whether the entry was not processed
	Replacements int    // Number of line endings rewritten
}

// 📦 DirectoryOperation describes one pass over a directory
type DirectoryOperation struct {
	Path     string   // Target directory
	Excludes []string // Exclude globs in effect
}

// 📊 Summary is the tally of a finished directory pass
type Summary struct {
	Converted    int
	Modified     int
	Skipped      int
	Replacements int
}

// 🎯 Logger writes progress lines to the console and structured records to zerolog
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *DirectoryOperation
	operations []FileOperation
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context, falling back to a stdout
// logger backed by the context's zerolog logger
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(contextKey{}).(*Logger); ok {
		return logger
	}
	return New(os.Stdout, *zerolog.Ctx(ctx))
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 LogConverting prints the progress notice for a file about to be converted
func (l *Logger) LogConverting(ctx context.Context, path string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s\n", color.New(color.FgCyan).Sprint("Converting:"), path)
}

// 📝 LogFileOperation records a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.operations = append(l.operations, op)

	l.zlog.Debug().
		Str("file", op.Path).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_skipped", op.IsSkipped).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartDirectoryOperation starts a new directory pass
func (l *Logger) StartDirectoryOperation(ctx context.Context, op DirectoryOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	l.zlog.Info().
		Str("directory", op.Path).
		Strs("exclude", op.Excludes).
		Msg("starting directory pass")
}

// 📝 EndDirectoryOperation ends the current directory pass and returns its tally
func (l *Logger) EndDirectoryOperation(ctx context.Context) Summary {
	l.mu.Lock()
	defer l.mu.Unlock()

	var sum Summary
	for _, op := range l.operations {
		if op.IsSkipped {
			sum.Skipped++
			continue
		}
		sum.Converted++
		sum.Replacements += op.Replacements
		if op.IsModified {
			sum.Modified++
		}
	}

	if l.currentOp == nil {
		return sum
	}

	l.zlog.Info().
		Str("directory", l.currentOp.Path).
		Int("converted", sum.Converted).
		Int("modified", sum.Modified).
		Int("skipped", sum.Skipped).
		Int("replacements", sum.Replacements).
		Msg("directory pass complete")

	l.currentOp = nil
	l.operations = nil
	return sum
}
