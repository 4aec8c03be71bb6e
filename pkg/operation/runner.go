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
	"time"

	"github.com/rs/zerolog"
)

// 🏃 Runner executes operations one at a time
type Runner struct {
	logger *zerolog.Logger
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// 🏃 Run executes an operation to completion
func (r *Runner) Run(ctx context.Context, op Operation) error {
	start := time.Now()
	err := op.Execute(ctx)
	if err != nil {
		r.logger.Debug().Err(err).Str("kind", KindOf(err).String()).Dur("elapsed", time.Since(start)).Msg("operation failed")
		return err
	}
	r.logger.Debug().Dur("elapsed", time.Since(start)).Msg("operation complete")
	return nil
}
