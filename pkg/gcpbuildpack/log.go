// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gcpbuildpack

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"cloud.google.com/go/logging"
	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/javabuildpack/containers/pkg/env"
)

var (
	divider = strings.Repeat("—", 80)
)

// Logf emits a structured logging line.
func (ctx *Context) Logf(format string, args ...interface{}) {
	ctx.logger.Printf(format, args...)
}

// Debugf emits a structured logging line if the debug flag is set.
func (ctx *Context) Debugf(format string, args ...interface{}) {
	if !ctx.debug {
		return
	}
	ctx.Logf("DEBUG: "+format, args...)
}

// Warnf emits a structured logging line for warnings.
func (ctx *Context) Warnf(format string, args ...interface{}) {
	ctx.Logf("Warning: "+format, args...)
}

// Tipf emits a logging line for tips to the user.
func (ctx *Context) Tipf(format string, args ...interface{}) {
	ctx.Logf(format, args...)
}

type structuredEntry struct {
	Severity string               `json:"severity"`
	Message  string               `json:"message"`
	Status   *buildererror.Status `json:"status,omitempty"`
}

// StructuredLogf emits a single-line JSON log entry with the given severity.
func (ctx *Context) StructuredLogf(severity logging.Severity, format string, args ...interface{}) {
	ctx.structuredLog(structuredEntry{
		Severity: strings.ToUpper(severity.String()),
		Message:  fmt.Sprintf(format, args...),
	})
}

func (ctx *Context) structuredLog(entry structuredEntry) {
	b, err := json.Marshal(entry)
	if err != nil {
		ctx.Logf("%s", entry.Message)
		return
	}
	ctx.Logf("%s", b)
}

// reportFailure logs a failed phase before the lifecycle exits.
func (ctx *Context) reportFailure(err error) {
	ctx.Logf(divider)
	if os.Getenv(env.StructuredLogging) == "true" {
		status := buildererror.StatusOf(err)
		ctx.structuredLog(structuredEntry{
			Severity: strings.ToUpper(logging.Error.String()),
			Message:  err.Error(),
			Status:   &status,
		})
	} else {
		ctx.Logf("Failure: %v", err)
	}
	if buildererror.StatusOf(err).UserAttributed() {
		ctx.Tipf(divider)
		ctx.Tipf("Your application could not be prepared for launch.")
		ctx.Tipf("Check that bin/ contains the launch script and that bound service credentials are valid.")
	}
	ctx.Logf(divider)
}
