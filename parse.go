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

// Package mmark provides a parser for a CommonMark-flavored markdown
// dialect extended with YAML front matter, strikeout, subscript, and
// superscript, and strict, multi-error reference-definition
// validation.
package mmark

import (
	"bytes"
	"sort"
	"strings"
)

// Parse parses a complete document. On success it returns a non-nil
// Document and a nil diagnostic slice. If any diagnostic was produced
// anywhere in the document, Parse returns a nil Document and the full
// set of diagnostics, sorted by source position: mmark does not
// produce a partial tree alongside errors.
func Parse(filename string, input []byte) (*Document, []Diagnostic) {
	text := string(bytes.ReplaceAll(input, []byte{0}, []byte("�")))
	text = strings.ReplaceAll(text, "\r\n", "\n")

	yamlValue, body, bodyLine, diag := consumeFrontMatter(filename, text)
	if diag != nil {
		return nil, []Diagnostic{*diag}
	}

	s := newScannerAt(filename, []rune(body), bodyLine, 1)
	defs := NewReferenceTable()
	bp := &blockParser{s: s, env: blockEnv{refLevel: 1, allowNaked: false, defs: defs}}
	ispBlocks := parseBlocks(bp)

	blocks, diags := reparseBlocks(ispBlocks, defs)
	if len(diags) > 0 {
		sort.Slice(diags, func(i, j int) bool { return comparePositions(diags[i].Position(), diags[j].Position()) })
		return nil, diags
	}
	return &Document{YAML: yamlValue, Blocks: blocks}, nil
}

func comparePositions(a, b SourcePos) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// frontMatterDelimiter is the line that opens and closes a YAML front
// matter block.
const frontMatterDelimiter = "---"

// consumeFrontMatter strips an optional leading YAML front matter
// block ("---" delimiter lines enclosing YAML content) from text,
// returning the decoded value (nil if there was none), the remaining
// body, and the 1-based line the body starts on.
//
// A YAML parse error is remapped from the decoder's own line/column,
// which is relative to the front matter content, to a position in the
// original document: the content begins on line 2 of the document (line
// 1 is the opening delimiter), so the remap is (L+1, C).
func consumeFrontMatter(filename, text string) (value any, body string, bodyLine int, diag *Diagnostic) {
	if !strings.HasPrefix(text, frontMatterDelimiter+"\n") && text != frontMatterDelimiter {
		return nil, text, 1, nil
	}
	rest := strings.TrimPrefix(text, frontMatterDelimiter+"\n")
	if rest == text {
		// text was exactly "---" with no trailing newline: no content, no body.
		return nil, "", 1, nil
	}

	yamlEnd := -1   // end of yaml content, exclusive of any separating newline
	closeStart := -1 // start of the closing delimiter line
	if rest == frontMatterDelimiter || strings.HasPrefix(rest, frontMatterDelimiter+"\n") {
		yamlEnd, closeStart = 0, 0
	} else if idx := strings.Index(rest, "\n"+frontMatterDelimiter); idx >= 0 {
		yamlEnd, closeStart = idx, idx+1
	}
	if closeStart < 0 {
		d := Diagnostic{
			Positions: []SourcePos{{Filename: filename, Line: 1, Column: 1}},
			Kind:      TrivialUnexpected{HasItem: false, Expected: []string{"closing \"---\" for front matter"}},
		}
		return nil, "", 1, &d
	}
	yamlContent := rest[:yamlEnd]
	after := rest[closeStart+len(frontMatterDelimiter):]
	after = strings.TrimPrefix(after, "\n")

	v, err := yamlDecode(yamlContent)
	if err != nil {
		line, col, msg, ok := parseYamlException(err)
		if !ok {
			line, col, msg = 1, 1, err.Error()
		}
		d := Diagnostic{
			Positions: []SourcePos{{Filename: filename, Line: line + 1, Column: col}},
			Kind:      FancyCustom{Err: YamlParseError{Message: msg}},
		}
		return nil, "", 1, &d
	}

	bodyLine = 3 + strings.Count(rest[:closeStart], "\n")
	return v, after, bodyLine, nil
}

// reparseBlocks walks a Block[Isp] tree produced by the block pass,
// reparsing every Isp span's inline content. It collects every
// diagnostic found anywhere in the tree rather than stopping at the
// first, so a single Parse reports as many errors as it can find at
// once.
func reparseBlocks(blocks []Block[Isp], defs *ReferenceTable) ([]Block[[]Inline], []Diagnostic) {
	var diags []Diagnostic
	out := make([]Block[[]Inline], len(blocks))
	for i, b := range blocks {
		rb, bdiags := reparseBlock(b, defs)
		out[i] = rb
		diags = append(diags, bdiags...)
	}
	if len(diags) > 0 {
		return nil, diags
	}
	return out, nil
}

func reparseBlock(b Block[Isp], defs *ReferenceTable) (Block[[]Inline], []Diagnostic) {
	var diags []Diagnostic
	out := Block[[]Inline]{
		Kind:      b.Kind,
		Pos:       b.Pos,
		CodeInfo:  b.CodeInfo,
		CodeBody:  b.CodeBody,
		ListStart: b.ListStart,
	}

	switch b.Kind {
	case Heading1Kind, Heading2Kind, Heading3Kind, Heading4Kind, Heading5Kind, Heading6Kind, NakedKind, ParagraphKind:
		if b.Content.IsError() {
			diags = append(diags, b.Content.Error())
			break
		}
		pos, text := b.Content.Span()
		if text == "" {
			// An empty naked/paragraph block only arises from an empty
			// list item (blocks.go's emptyListItem); it carries no
			// inline content of its own to reparse.
			break
		}
		children, diag := pInlinesTop(pos, text, defs)
		if diag != nil {
			diags = append(diags, *diag)
			break
		}
		out.Content = children
	}

	if len(b.Children) > 0 {
		out.Children = make([]Block[[]Inline], len(b.Children))
		for i, child := range b.Children {
			rc, cdiags := reparseBlock(child, defs)
			out.Children[i] = rc
			diags = append(diags, cdiags...)
		}
	}

	if len(b.Items) > 0 {
		out.Items = make([][]Block[[]Inline], len(b.Items))
		for i, item := range b.Items {
			ritem, idiags := reparseBlocks(item, defs)
			out.Items[i] = ritem
			diags = append(diags, idiags...)
		}
	}

	return out, diags
}
