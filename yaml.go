// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package mmark

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlExceptionPattern matches the "YAML parse exception at line L,
// column C:\nREST" shape front-matter errors are normalized to.
var yamlExceptionPattern = regexp.MustCompile(`(?s)^YAML parse exception at line (\d+), column (\d+):\n(.*)$`)

// yamlLinePattern extracts the line number yaml.v3 reports in its own
// error text ("yaml: line N: ..." or "line N: ...").
var yamlLinePattern = regexp.MustCompile(`line (\d+):`)

// yamlDecode decodes YAML front-matter content into a dynamic value.
// On failure, the returned error's message is always in the
// "YAML parse exception at line L, column C:\nREST" shape, so callers
// can apply the same position-remap rule regardless of what
// gopkg.in/yaml.v3 itself reported.
func yamlDecode(text string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(text), &v); err != nil {
		line, msg := 1, err.Error()
		if m := yamlLinePattern.FindStringSubmatch(msg); m != nil {
			line, _ = strconv.Atoi(m[1])
		}
		return nil, fmt.Errorf("YAML parse exception at line %d, column %d:\n%s", line, 1, strings.TrimSpace(msg))
	}
	return v, nil
}

// parseYamlException extracts (line, column, message) from an error
// produced by yamlDecode, reporting whether the expected shape
// matched.
func parseYamlException(err error) (line, column int, message string, ok bool) {
	m := yamlExceptionPattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0, 0, "", false
	}
	line, _ = strconv.Atoi(m[1])
	column, _ = strconv.Atoi(m[2])
	return line, column, m[3], true
}
