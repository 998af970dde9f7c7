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

import "fmt"

// Isp ("inline source payload") is a span of raw text deferred for
// inline parsing, or a diagnostic that must surface when the owning
// block is reparsed. It is the T=Isp instantiation of Block[T] that
// the block pass produces.
type Isp struct {
	pos  SourcePos
	text string
	err  *Diagnostic
}

// NewIspSpan returns an Isp wrapping a raw, not-yet-parsed span of
// text anchored at pos (the column of its first payload character).
func NewIspSpan(pos SourcePos, text string) Isp {
	return Isp{pos: pos, text: text}
}

// NewIspError returns an Isp that surfaces d without ever being
// reparsed.
func NewIspError(d Diagnostic) Isp {
	return Isp{err: &d}
}

// IsError reports whether the span is a deferred error.
func (i Isp) IsError() bool {
	return i.err != nil
}

// Span returns the anchor position and text of a non-error Isp.
func (i Isp) Span() (SourcePos, string) {
	return i.pos, i.text
}

// Error returns the deferred diagnostic of an error Isp.
func (i Isp) Error() Diagnostic {
	return *i.err
}

// BlockKind identifies the shape of a Block[T] value; see the
// corresponding fields' doc comments for which fields it populates.
type BlockKind uint8

const (
	ThematicBreakKind BlockKind = 1 + iota
	Heading1Kind
	Heading2Kind
	Heading3Kind
	Heading4Kind
	Heading5Kind
	Heading6Kind
	CodeBlockKind
	NakedKind
	ParagraphKind
	BlockquoteKind
	OrderedListKind
	UnorderedListKind
)

// HeadingLevel returns 1-6 for a heading kind, or 0 otherwise.
func (k BlockKind) HeadingLevel() int {
	if k < Heading1Kind || k > Heading6Kind {
		return 0
	}
	return int(k-Heading1Kind) + 1
}

func (k BlockKind) String() string {
	switch k {
	case ThematicBreakKind:
		return "ThematicBreak"
	case Heading1Kind, Heading2Kind, Heading3Kind, Heading4Kind, Heading5Kind, Heading6Kind:
		return fmt.Sprintf("Heading%d", k.HeadingLevel())
	case CodeBlockKind:
		return "CodeBlock"
	case NakedKind:
		return "Naked"
	case ParagraphKind:
		return "Paragraph"
	case BlockquoteKind:
		return "Blockquote"
	case OrderedListKind:
		return "OrderedList"
	case UnorderedListKind:
		return "UnorderedList"
	default:
		return fmt.Sprintf("BlockKind(%d)", uint8(k))
	}
}

// Block is a structural unit of a document, parameterized over the
// representation of its inline content: T=Isp after the block pass,
// T=[]Inline after the inline pass (non-empty, except for the nil
// Content of the block that stands for an empty list item). Not every field is
// meaningful for every Kind — see the per-kind comments.
type Block[T any] struct {
	Kind BlockKind
	Pos  SourcePos

	// Content holds the inline payload for Heading1..6, Naked, and
	// Paragraph.
	Content T

	// CodeInfo and CodeBody hold the info string (nil if absent) and
	// body text of a CodeBlock.
	CodeInfo *string
	CodeBody string

	// Children holds the contained blocks of a Blockquote.
	Children []Block[T]

	// ListStart holds the first index of an OrderedList.
	ListStart uint32

	// Items holds the per-item block sequences of an OrderedList or
	// UnorderedList. Each item is itself a (possibly empty) sequence
	// of blocks.
	Items [][]Block[T]
}

// InlineKind identifies the shape of an Inline value.
type InlineKind uint8

const (
	PlainKind InlineKind = 1 + iota
	LineBreakKind
	EmphasisKind
	StrongKind
	StrikeoutKind
	SubscriptKind
	SuperscriptKind
	CodeSpanKind
	LinkKind
	ImageKind
)

func (k InlineKind) String() string {
	switch k {
	case PlainKind:
		return "Plain"
	case LineBreakKind:
		return "LineBreak"
	case EmphasisKind:
		return "Emphasis"
	case StrongKind:
		return "Strong"
	case StrikeoutKind:
		return "Strikeout"
	case SubscriptKind:
		return "Subscript"
	case SuperscriptKind:
		return "Superscript"
	case CodeSpanKind:
		return "CodeSpan"
	case LinkKind:
		return "Link"
	case ImageKind:
		return "Image"
	default:
		return fmt.Sprintf("InlineKind(%d)", uint8(k))
	}
}

// Inline is a leaf or frame of parsed inline content.
type Inline struct {
	Kind InlineKind
	Pos  SourcePos

	// Text holds the literal text of Plain and CodeSpan.
	Text string

	// Children holds the contained inlines of Emphasis, Strong,
	// Strikeout, Subscript, Superscript, and the link text / image alt
	// text of Link and Image.
	Children []Inline

	// URI and Title hold the destination and optional title of Link
	// and Image.
	URI   string
	Title *string
}

// Document is the result of a successful parse.
type Document struct {
	// YAML holds the decoded front matter value, or nil if the
	// document had none.
	YAML any

	Blocks []Block[[]Inline]
}
