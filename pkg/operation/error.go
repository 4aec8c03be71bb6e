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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

// 🏷️ Kind categorizes a failure
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindPath
	KindFileIO
	KindDecode
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindPath:
		return "path"
	case KindFileIO:
		return "file"
	case KindDecode:
		return "decode"
	case KindConfig:
		return "config"
	default:
		return "unknown"
	}
}

// ExitCode is the process exit status for the kind. It is never 0.
func (k Kind) ExitCode() int {
	switch k {
	case KindPath:
		return 2
	case KindFileIO:
		return 3
	case KindDecode:
		return 4
	case KindConfig:
		return 5
	default:
		return 1
	}
}

// ❌ Error is a categorized failure tied to a path
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and the path it concerns.
func NewError(kind Kind, path string, err error) error {
	return errors.WithStack(&Error{Kind: kind, Path: path, Err: err})
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps err to a process exit status, 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
