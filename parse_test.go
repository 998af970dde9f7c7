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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseInsecureCharacters(t *testing.T) {
	const input = "Hello,\x00World\n"
	const want = "Hello,�World"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	if len(doc.Blocks) != 1 {
		t.Fatalf("len(doc.Blocks) = %d; want 1", len(doc.Blocks))
	}
	if got := doc.Blocks[0].Kind; got != ParagraphKind {
		t.Fatalf("doc.Blocks[0].Kind = %v; want %v", got, ParagraphKind)
	}
	if len(doc.Blocks[0].Content) != 1 || doc.Blocks[0].Content[0].Text != want {
		t.Errorf("doc.Blocks[0].Content = %+v; want single Plain %q", doc.Blocks[0].Content, want)
	}
}

func TestParseFrontMatter(t *testing.T) {
	input := "---\n" +
		"title: Hello\n" +
		"tags: [a, b]\n" +
		"---\n" +
		"# Heading\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	values, ok := doc.YAML.(map[string]any)
	if !ok {
		t.Fatalf("doc.YAML = %#v (%T); want map[string]any", doc.YAML, doc.YAML)
	}
	if got := values["title"]; got != "Hello" {
		t.Errorf("title = %v; want Hello", got)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != Heading1Kind {
		t.Fatalf("doc.Blocks = %+v; want single Heading1", doc.Blocks)
	}
	// The heading should be reported on line 5 (front matter occupies lines 1-4).
	if got := doc.Blocks[0].Pos.Line; got != 5 {
		t.Errorf("doc.Blocks[0].Pos.Line = %d; want 5", got)
	}
}

func TestParseFrontMatterUnterminated(t *testing.T) {
	input := "---\n" +
		"title: Hello\n"

	_, diags := Parse("test.md", []byte(input))
	if len(diags) != 1 {
		t.Fatalf("Parse(%q) returned %d diagnostics; want 1", input, len(diags))
	}
}

func TestParseFrontMatterInvalidYAML(t *testing.T) {
	input := "---\n" +
		"title: [unterminated\n" +
		"---\n" +
		"Body\n"

	_, diags := Parse("test.md", []byte(input))
	if len(diags) != 1 {
		t.Fatalf("Parse(%q) returned %d diagnostics; want 1", input, len(diags))
	}
	if _, ok := diags[0].Kind.(FancyCustom); !ok {
		t.Errorf("diags[0].Kind = %#v; want FancyCustom(YamlParseError)", diags[0].Kind)
	}
}

func TestParseNoFrontMatter(t *testing.T) {
	input := "Just a paragraph.\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	if doc.YAML != nil {
		t.Errorf("doc.YAML = %#v; want nil", doc.YAML)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != ParagraphKind {
		t.Fatalf("doc.Blocks = %+v; want single Paragraph", doc.Blocks)
	}
}

func TestParseMultipleDiagnostics(t *testing.T) {
	input := "[a]: /a\n" +
		"[a]: /a-again\n" +
		"\n" +
		"[undefined]\n"

	_, diags := Parse("test.md", []byte(input))
	if len(diags) != 2 {
		t.Fatalf("Parse(%q) returned %d diagnostics; want 2:\n%v", input, len(diags), diags)
	}
	if _, ok := diags[0].Kind.(FancyCustom).Err.(DuplicateReferenceDefinition); !ok {
		t.Errorf("diags[0] = %v; want DuplicateReferenceDefinition", diags[0])
	}
	if _, ok := diags[1].Kind.(FancyCustom).Err.(CouldNotFindReferenceDefinition); !ok {
		t.Errorf("diags[1] = %v; want CouldNotFindReferenceDefinition", diags[1])
	}
}

func TestParseHeadingsAndParagraphs(t *testing.T) {
	input := "# Title\n" +
		"\n" +
		"Some *text*.\n" +
		"\n" +
		"## Subtitle\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	gotKinds := make([]BlockKind, len(doc.Blocks))
	for i, b := range doc.Blocks {
		gotKinds[i] = b.Kind
	}
	want := []BlockKind{Heading1Kind, ParagraphKind, Heading2Kind}
	if diff := cmp.Diff(want, gotKinds); diff != "" {
		t.Errorf("block kinds (-want +got):\n%s", diff)
	}
}

func TestParseBlockquote(t *testing.T) {
	input := "> a\n" +
		"> b\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != BlockquoteKind {
		t.Fatalf("doc.Blocks = %+v; want single Blockquote", doc.Blocks)
	}
	if len(doc.Blocks[0].Children) != 1 || doc.Blocks[0].Children[0].Kind != ParagraphKind {
		t.Fatalf("doc.Blocks[0].Children = %+v; want single Paragraph", doc.Blocks[0].Children)
	}
}

func TestParseBlockquoteEndsWithoutMarker(t *testing.T) {
	input := "> a\n" +
		"b\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	want := []BlockKind{BlockquoteKind, ParagraphKind}
	got := make([]BlockKind, len(doc.Blocks))
	for i, b := range doc.Blocks {
		got[i] = b.Kind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block kinds (-want +got):\n%s", diff)
	}
}

func TestParseOrderedListStartIndexTooBig(t *testing.T) {
	input := "1000000000. a\n"

	_, diags := Parse("test.md", []byte(input))
	if len(diags) != 1 {
		t.Fatalf("Parse(%q) returned %d diagnostics; want 1", input, len(diags))
	}
	if _, ok := diags[0].Kind.(FancyCustom).Err.(ListStartIndexTooBig); !ok {
		t.Errorf("diags[0] = %v; want ListStartIndexTooBig", diags[0])
	}
}

func TestParseOrderedListIndexOutOfOrder(t *testing.T) {
	input := "1. a\n" +
		"3. b\n"

	_, diags := Parse("test.md", []byte(input))
	if len(diags) != 1 {
		t.Fatalf("Parse(%q) returned %d diagnostics; want 1", input, len(diags))
	}
	want := ListIndexOutOfOrder{Actual: 3, Expected: 2}
	if diff := cmp.Diff(want, diags[0].Kind.(FancyCustom).Err); diff != "" {
		t.Errorf("diags[0] error (-want +got):\n%s", diff)
	}
}

func TestParseUnorderedList(t *testing.T) {
	input := "- a\n" +
		"- b\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != UnorderedListKind {
		t.Fatalf("doc.Blocks = %+v; want single UnorderedList", doc.Blocks)
	}
	if len(doc.Blocks[0].Items) != 2 {
		t.Fatalf("len(doc.Blocks[0].Items) = %d; want 2", len(doc.Blocks[0].Items))
	}
	for i, item := range doc.Blocks[0].Items {
		if len(item) != 1 || item[0].Kind != NakedKind {
			t.Errorf("doc.Blocks[0].Items[%d] = %+v; want single Naked block", i, item)
		}
	}
}

func TestParseLooseList(t *testing.T) {
	input := "- a\n" +
		"\n" +
		"- b\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	for i, item := range doc.Blocks[0].Items {
		if len(item) != 1 || item[0].Kind != ParagraphKind {
			t.Errorf("doc.Blocks[0].Items[%d] = %+v; want single Paragraph block (loose list)", i, item)
		}
	}
}

func TestParseFencedCode(t *testing.T) {
	input := "```go\n" +
		"x := 1\n" +
		"```\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind != CodeBlockKind {
		t.Fatalf("doc.Blocks = %+v; want single CodeBlock", doc.Blocks)
	}
	if got := doc.Blocks[0].CodeInfo; got == nil || *got != "go" {
		t.Errorf("CodeInfo = %v; want \"go\"", got)
	}
	if got := doc.Blocks[0].CodeBody; got != "x := 1\n" {
		t.Errorf("CodeBody = %q; want %q", got, "x := 1\n")
	}
}

func TestParseThematicBreak(t *testing.T) {
	input := "a\n\n---\n\nb\n"

	doc, diags := Parse("test.md", []byte(input))
	if diags != nil {
		t.Fatalf("Parse(%q) returned diagnostics: %v", input, diags)
	}
	want := []BlockKind{ParagraphKind, ThematicBreakKind, ParagraphKind}
	got := make([]BlockKind, len(doc.Blocks))
	for i, b := range doc.Blocks {
		got[i] = b.Kind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("block kinds (-want +got):\n%s", diff)
	}
}
