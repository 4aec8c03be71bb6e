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

package text

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

var crlf = []byte{'\r', '\n'}

// NormalizeResult holds the outcome of a line ending normalization
type NormalizeResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	ReplacementCount int
	WasModified      bool
}

// DecodeError reports content that is not valid UTF-8 once CR LF pairs are gone.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 at byte %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NormalizeLineEndings reads all of content, collapses every CR LF pair into a
// single LF and checks that the result decodes as UTF-8. A run of CRs directly
// before an LF collapses with it, so the output never contains CR LF. Any other
// CR or LF byte is left as it is.
func NormalizeLineEndings(ctx context.Context, content io.Reader) (*NormalizeResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	return NormalizeBytes(ctx, originalContent)
}

// NormalizeBytes is NormalizeLineEndings for content already in memory.
func NormalizeBytes(ctx context.Context, originalContent []byte) (*NormalizeResult, error) {
	result := &NormalizeResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	if bytes.Contains(originalContent, crlf) {
		result.ModifiedContent, result.ReplacementCount = collapseCRLF(originalContent)
		result.WasModified = true
	}

	if err := ValidateUTF8(result.ModifiedContent); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Trace().
		Int("bytes", len(originalContent)).
		Int("replacements", result.ReplacementCount).
		Msg("normalized line endings")

	return result, nil
}

// collapseCRLF drops every CR that sits directly before an LF and returns the
// number of line terminators it rewrote.
func collapseCRLF(in []byte) ([]byte, int) {
	out := make([]byte, 0, len(in))
	count := 0
	for _, b := range in {
		if b == '\n' {
			n := len(out)
			for n > 0 && out[n-1] == '\r' {
				n--
			}
			if n != len(out) {
				out = out[:n]
				count++
			}
		}
		out = append(out, b)
	}
	return out, count
}

// ValidateUTF8 returns a *DecodeError if b is not valid UTF-8.
func ValidateUTF8(b []byte) error {
	_, n, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return errors.WithStack(&DecodeError{Offset: n, Err: err})
	}
	return nil
}
