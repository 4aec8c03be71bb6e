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

	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the runner executes
type Operation interface {
	Execute(ctx context.Context) error
}

// 🔧 Options configures a directory conversion
type Options struct {
	// Directory is the target directory, already resolved
	Directory string
	// Exclude lists doublestar globs matched against entry names
	Exclude []string
}

// 🏭 NewConvertOperation creates an operation that converts opts.Directory
func NewConvertOperation(opts Options) *ConvertOperation {
	return &ConvertOperation{opts: opts}
}

// 📦 ConvertOperation implements Operation around ConvertDirectory
type ConvertOperation struct {
	opts   Options
	result *Result
}

// 🏃 Execute runs the directory pass
func (op *ConvertOperation) Execute(ctx context.Context) error {
	if op.opts.Directory == "" {
		return NewError(KindUsage, "", errors.New("directory is required"))
	}

	res, err := ConvertDirectory(ctx, op.opts.Directory, op.opts.Exclude...)
	op.result = res
	return err
}

// Result returns the outcome of the last Execute, nil if the directory could not be listed.
func (op *ConvertOperation) Result() *Result {
	return op.result
}
