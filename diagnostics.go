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
	"strconv"
	"strings"
)

// Diagnostic is a single parser error, anchored to one or more source
// positions (the first is the primary one; additional positions, when
// present, are included for context such as a matching opening
// delimiter).
type Diagnostic struct {
	Positions []SourcePos
	Kind      ErrorKind
}

// Position returns the diagnostic's primary source position.
func (d Diagnostic) Position() SourcePos {
	return d.Positions[0]
}

func (d Diagnostic) Error() string {
	return d.Position().String() + ": " + d.Kind.Error()
}

// ErrorKind is the tagged union of diagnostic payloads: either a
// trivial "unexpected token" failure from a primitive scanner, or a
// domain-specific MMarkErr.
type ErrorKind interface {
	error
	errorKind()
}

// TrivialUnexpected reports an unexpected item (HasItem false means
// end of input) against a set of expected alternatives.
type TrivialUnexpected struct {
	Item     string
	HasItem  bool
	Expected []string
}

func (TrivialUnexpected) errorKind() {}

func (e TrivialUnexpected) Error() string {
	var sb strings.Builder
	sb.WriteString("unexpected ")
	if e.HasItem {
		sb.WriteString(strconv.Quote(e.Item))
	} else {
		sb.WriteString("end of input")
	}
	if len(e.Expected) > 0 {
		sb.WriteString(", expected ")
		for i, want := range e.Expected {
			if i > 0 {
				sb.WriteString(" or ")
			}
			sb.WriteString(want)
		}
	}
	return sb.String()
}

// FancyCustom wraps a domain-specific MMarkErr.
type FancyCustom struct {
	Err MMarkErr
}

func (FancyCustom) errorKind() {}

func (e FancyCustom) Error() string {
	return e.Err.Error()
}

// MMarkErr is the closed set of mmark-specific diagnostic payloads.
type MMarkErr interface {
	error
	mmarkErr()
}

// YamlParseError wraps the message produced by the YAML decoder.
type YamlParseError struct {
	Message string
}

func (YamlParseError) mmarkErr() {}

func (e YamlParseError) Error() string {
	return "could not parse YAML front matter: " + e.Message
}

// ListStartIndexTooBig reports an ordered list whose first index
// exceeds 10^9-1.
type ListStartIndexTooBig struct {
	Index uint32
}

func (ListStartIndexTooBig) mmarkErr() {}

func (e ListStartIndexTooBig) Error() string {
	return fmt.Sprintf("ordered list start index %d is too big", e.Index)
}

// ListIndexOutOfOrder reports an ordered list item whose index does
// not match the expected running sequence.
type ListIndexOutOfOrder struct {
	Actual   uint32
	Expected uint32
}

func (ListIndexOutOfOrder) mmarkErr() {}

func (e ListIndexOutOfOrder) Error() string {
	return fmt.Sprintf("list item index %d out of order, expected %d", e.Actual, e.Expected)
}

// DuplicateReferenceDefinition reports a second definition for a
// label already registered earlier in the document.
type DuplicateReferenceDefinition struct {
	Label string
}

func (DuplicateReferenceDefinition) mmarkErr() {}

func (e DuplicateReferenceDefinition) Error() string {
	return fmt.Sprintf("duplicate reference definition for label %q", e.Label)
}

// CouldNotFindReferenceDefinition reports a reference link/image whose
// label has no matching definition.
type CouldNotFindReferenceDefinition struct {
	Label      string
	Candidates []string
}

func (CouldNotFindReferenceDefinition) mmarkErr() {}

func (e CouldNotFindReferenceDefinition) Error() string {
	msg := fmt.Sprintf("could not find reference definition for label %q", e.Label)
	if len(e.Candidates) > 0 {
		msg += "; did you mean " + strings.Join(e.Candidates, ", ") + "?"
	}
	return msg
}

// UnknownHtmlEntityName reports a named entity reference ("&name;")
// that does not appear in the entity table.
type UnknownHtmlEntityName struct {
	Name string
}

func (UnknownHtmlEntityName) mmarkErr() {}

func (e UnknownHtmlEntityName) Error() string {
	return fmt.Sprintf("unknown HTML entity name %q", e.Name)
}

// InvalidNumericCharacter reports a numeric character reference
// ("&#...;") whose value is zero or above U+10FFFF.
type InvalidNumericCharacter struct {
	Value uint32
}

func (InvalidNumericCharacter) mmarkErr() {}

func (e InvalidNumericCharacter) Error() string {
	return fmt.Sprintf("invalid numeric character reference U+%X", e.Value)
}

// NonFlankingDelimiterRun reports a delimiter run that could not be
// used as either an opener or a closer given its surrounding
// characters.
type NonFlankingDelimiterRun struct {
	Chars string
}

func (NonFlankingDelimiterRun) mmarkErr() {}

func (e NonFlankingDelimiterRun) Error() string {
	return fmt.Sprintf("delimiter run %q is not flanking", e.Chars)
}
