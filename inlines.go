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
	"sort"
	"strings"
	"unicode"
)

// inlineParser drives the inline reparse pass over one Isp span: a
// recursive-descent, backtracking parser, rather than the
// delimiter-stack-and-rewind algorithm a batch CommonMark parser uses,
// since mmark's frame set (emphasis, strong, strikeout, subscript,
// superscript) is resolved greedily at the point a delimiter run is
// encountered instead of in a second pass over a flat token stream.
type inlineParser struct {
	s    *scanner
	env  inlineEnv
	defs *ReferenceTable
	err  *Diagnostic
}

// pInlinesTop parses the full content of a non-error Isp span, failing
// if it yields no inlines and the span may not be empty.
func pInlinesTop(pos SourcePos, text string, defs *ReferenceTable) ([]Inline, *Diagnostic) {
	s := newScannerAt(pos.Filename, []rune(text), pos.Line, Pos(pos.Column))
	ip := &inlineParser{s: s, env: topLevelInlineEnv(), defs: defs}
	children, diag := ip.pInlines()
	if diag != nil {
		return nil, diag
	}
	if len(children) == 0 && !ip.env.allowEmpty {
		d := Diagnostic{
			Positions: []SourcePos{pos},
			Kind:      TrivialUnexpected{HasItem: false, Expected: []string{"inline content"}},
		}
		return nil, &d
	}
	return children, nil
}

func (ip *inlineParser) pInlines() ([]Inline, *Diagnostic) {
	var children []Inline
	for !ip.s.eof() {
		in, ok := ip.pInline()
		if ip.err != nil {
			return nil, ip.err
		}
		if !ok {
			break
		}
		ip.env.lastChar = lastCharClassOf(in)
		children = appendMergingPlain(children, in)
	}
	return children, nil
}

// lastCharClassOf classifies the character an inline just produced,
// for the flanking rule consulted by the next pFrame/tryCloser call:
// a hard line break or a trailing space counts as Space; any other
// non-empty inline counts as Other.
func lastCharClassOf(in Inline) lastCharClass {
	if in.Kind == LineBreakKind {
		return lastCharSpace
	}
	if in.Kind != PlainKind {
		return lastCharOther
	}
	if in.Text == "" {
		return lastCharNothing
	}
	rs := []rune(in.Text)
	if unicode.IsSpace(rs[len(rs)-1]) {
		return lastCharSpace
	}
	return lastCharOther
}

func appendMergingPlain(children []Inline, in Inline) []Inline {
	if in.Kind == PlainKind && len(children) > 0 {
		last := &children[len(children)-1]
		if last.Kind == PlainKind {
			last.Text += in.Text
			return children
		}
	}
	return append(children, in)
}

// pInline dispatches a single inline construct at the cursor. It only
// reports failure at end of input or once ip.err has been set by a
// nested parse; every other character is eventually consumed as a
// literal Plain rune by the default fallback.
func (ip *inlineParser) pInline() (Inline, bool) {
	if ip.err != nil || ip.s.eof() {
		return Inline{}, false
	}
	r, _ := ip.s.peek()
	switch r {
	case '`':
		if in, ok := ip.pCodeSpan(); ok {
			return in, true
		}
	case '\\':
		if in, ok := ip.pEscape(); ok {
			return in, true
		}
	case '&':
		if in, ok := ip.pEntity(); ok {
			return in, true
		}
		if ip.err != nil {
			return Inline{}, false
		}
	case '!':
		if in, ok := ip.pImage(); ok {
			return in, true
		}
		if ip.err != nil {
			return Inline{}, false
		}
	case '[':
		if in, ok := ip.pLink(); ok {
			return in, true
		}
		if ip.err != nil {
			return Inline{}, false
		}
	case '<':
		if in, ok := ip.pAutolink(); ok {
			return in, true
		}
	case ' ', '\n', '\r':
		if in, ok := ip.pLineBreak(); ok {
			return in, true
		}
	default:
		if isFrameConstituent(r) {
			if in, ok := ip.pFrame(); ok {
				return in, true
			}
			if ip.err != nil {
				return Inline{}, false
			}
		}
	}
	return ip.pPlainChar()
}

func (ip *inlineParser) pPlainChar() (Inline, bool) {
	if ip.s.eof() {
		return Inline{}, false
	}
	pos := ip.s.pos_()
	r := ip.s.advance()
	return Inline{Kind: PlainKind, Pos: pos, Text: string(r)}, true
}

// pLineBreak matches a line ending, in either of its two forms: two or
// more trailing spaces before the line ending produce a hard
// LineBreak; anything less (a bare LF, or a single trailing space)
// produces a soft break, which collapses to a single Plain space
// rather than carrying the embedded newline through as literal text.
// Either way, the following line's leading whitespace is consumed.
func (ip *inlineParser) pLineBreak() (Inline, bool) {
	m := ip.s.mark()
	pos := ip.s.pos_()
	count := 0
	for {
		r, ok := ip.s.peek()
		if !ok || r != ' ' {
			break
		}
		count++
		ip.s.advance()
	}
	if r, ok := ip.s.peek(); !ok || !isEOLRune(r) {
		ip.s.reset(m)
		return Inline{}, false
	}
	hard := count >= 2
	ip.s.eol()
	ip.s.scPrime()
	if hard {
		return Inline{Kind: LineBreakKind, Pos: pos}, true
	}
	return Inline{Kind: PlainKind, Pos: pos, Text: " "}, true
}

// pEscape matches a backslash-escaped punctuation character, or, at
// end of line, a hard line break.
func (ip *inlineParser) pEscape() (Inline, bool) {
	pos := ip.s.pos_()
	if r, ok := ip.s.peek(); !ok || r != '\\' {
		return Inline{}, false
	}
	if nxt, ok := ip.s.peekAt(1); ok && isEOLRune(nxt) {
		ip.s.advance()
		ip.s.eol()
		ip.s.scPrime()
		return Inline{Kind: LineBreakKind, Pos: pos}, true
	}
	if er, ok := ip.s.escapedChar(); ok {
		return Inline{Kind: PlainKind, Pos: pos, Text: string(er)}, true
	}
	return Inline{}, false
}

// pEntity matches a numeric or named character reference, surfacing a
// diagnostic (and aborting the parse) if the reference is
// syntactically well formed but semantically invalid.
func (ip *inlineParser) pEntity() (Inline, bool) {
	pos := ip.s.pos_()
	if text, diag, ok := ip.s.numericReference(); ok {
		if diag != nil {
			ip.err = diag
			return Inline{}, false
		}
		return Inline{Kind: PlainKind, Pos: pos, Text: text}, true
	}
	if text, diag, ok := ip.s.namedReference(); ok {
		if diag != nil {
			ip.err = diag
			return Inline{}, false
		}
		return Inline{Kind: PlainKind, Pos: pos, Text: text}, true
	}
	return Inline{}, false
}

// pCodeSpan matches a run of one or more backticks, content up to a
// run of the same length, and strips a single leading and trailing
// space if the content is not all spaces.
func (ip *inlineParser) pCodeSpan() (Inline, bool) {
	m := ip.s.mark()
	pos := ip.s.pos_()
	backtickLen := 0
	for {
		r, ok := ip.s.peek()
		if !ok || r != '`' {
			break
		}
		backtickLen++
		ip.s.advance()
	}
	if backtickLen == 0 {
		return Inline{}, false
	}
	var content []rune
	for {
		if ip.s.eof() {
			ip.s.reset(m)
			return Inline{}, false
		}
		r, _ := ip.s.peek()
		if r == '`' {
			n := 0
			for {
				rr, ok := ip.s.peek()
				if !ok || rr != '`' {
					break
				}
				n++
				ip.s.advance()
			}
			if n == backtickLen {
				text := string(content)
				if len(content) >= 2 && content[0] == ' ' && content[len(content)-1] == ' ' && !isAllSpaces(content) {
					text = string(content[1 : len(content)-1])
				}
				return Inline{Kind: CodeSpanKind, Pos: pos, Text: text}, true
			}
			content = append(content, []rune(strings.Repeat("`", n))...)
			continue
		}
		content = append(content, r)
		ip.s.advance()
	}
}

func isAllSpaces(rs []rune) bool {
	for _, r := range rs {
		if r != ' ' {
			return false
		}
	}
	return true
}

// pAutolink matches "<" a URI-scheme or bare email address ">", with
// no internal whitespace or nesting. A bare email destination is
// rewritten with a mailto: scheme.
func (ip *inlineParser) pAutolink() (Inline, bool) {
	m := ip.s.mark()
	pos := ip.s.pos_()
	if r, ok := ip.s.peek(); !ok || r != '<' {
		return Inline{}, false
	}
	ip.s.advance()
	var sb strings.Builder
	for {
		r, ok := ip.s.peek()
		if !ok || r == '<' || isSpaceTab(r) || isEOLRune(r) {
			ip.s.reset(m)
			return Inline{}, false
		}
		if r == '>' {
			ip.s.advance()
			break
		}
		sb.WriteRune(r)
		ip.s.advance()
	}
	text := sb.String()
	isEmail := looksLikeEmail(text)
	if text == "" || (!looksLikeURIScheme(text) && !isEmail) {
		ip.s.reset(m)
		return Inline{}, false
	}
	dest := text
	if isEmail && !strings.Contains(text, ":") {
		dest = "mailto:" + text
	}
	return Inline{Kind: LinkKind, Pos: pos, URI: dest, Children: []Inline{{Kind: PlainKind, Pos: pos, Text: text}}}, true
}

func looksLikeURIScheme(s string) bool {
	i := strings.IndexByte(s, ':')
	if i < 2 {
		return false
	}
	scheme := s[:i]
	if !isASCIIAlpha(rune(scheme[0])) {
		return false
	}
	for _, c := range scheme[1:] {
		if !isASCIIAlpha(c) && !isASCIIDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}
	return true
}

func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	return at > 0 && at < len(s)-1
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// pFrame matches the longest admissible frame opened by a run of
// identical flanking characters ('*', '_', '~' or '^'), trying a
// double-width (strong/strikeout) frame before a single-width
// (emphasis/subscript/superscript) one.
func (ip *inlineParser) pFrame() (Inline, bool) {
	m := ip.s.mark()
	ch, ok := ip.s.peek()
	if !ok || !isFrameConstituent(ch) {
		return Inline{}, false
	}
	count := 0
	for {
		r, ok := ip.s.peek()
		if !ok || r != ch {
			break
		}
		count++
		ip.s.advance()
	}
	if ip.env.lastChar == lastCharOther || !ip.isRightOfOpenerFlanking(m) {
		ip.s.reset(m)
		return Inline{}, false
	}
	maxWidth := 2
	if ch == '^' {
		maxWidth = 1
	}
	var widths []int
	if count >= 2 && maxWidth >= 2 {
		widths = append(widths, 2)
	}
	if count >= 1 {
		widths = append(widths, 1)
	}
	for _, w := range widths {
		ip.s.reset(m)
		for i := 0; i < w; i++ {
			ip.s.advance()
		}
		kind := frameKind(ch, w)
		if in, ok := ip.pEnclosedInline(ch, w, kind, m); ok {
			return in, true
		}
	}
	ip.s.reset(m)
	chars := strings.Repeat(string(ch), count)
	diag := Diagnostic{
		Positions: []SourcePos{ip.s.pos_()},
		Kind:      FancyCustom{Err: NonFlankingDelimiterRun{Chars: chars}},
	}
	ip.err = &diag
	return Inline{}, false
}

func frameKind(ch rune, width int) InlineKind {
	switch ch {
	case '*', '_':
		if width == 2 {
			return StrongKind
		}
		return EmphasisKind
	case '~':
		if width == 2 {
			return StrikeoutKind
		}
		return SubscriptKind
	default: // '^'
		return SuperscriptKind
	}
}

// pEnclosedInline parses the content between an opening delimiter run
// (already consumed, of exactly width characters starting at
// openerMark) and a matching closing run of the same width,
// recursively reparsing the content with a frame-scoped environment.
func (ip *inlineParser) pEnclosedInline(ch rune, width int, kind InlineKind, openerMark mark) (Inline, bool) {
	pos := ip.s.pos_()
	inner := &inlineParser{s: ip.s, env: ip.env.withFrame(true, true), defs: ip.defs}
	var children []Inline
	for {
		if ip.s.eof() {
			return Inline{}, false
		}
		if closed := inner.tryCloser(ch, width); closed {
			if len(children) == 0 {
				return Inline{}, false
			}
			return Inline{Kind: kind, Pos: pos, Children: children}, true
		}
		in, ok := inner.pInline()
		if inner.err != nil {
			ip.err = inner.err
			return Inline{}, false
		}
		if !ok {
			return Inline{}, false
		}
		inner.env.lastChar = lastCharClassOf(in)
		children = appendMergingPlain(children, in)
	}
}

// tryCloser matches exactly width characters of ch at the cursor,
// rejected (per the closer side of the flanking rule) when the
// content just parsed ended in a space, or when the character
// following the run is neither transparent nor a markup char nor EOF.
func (ip *inlineParser) tryCloser(ch rune, width int) bool {
	m := ip.s.mark()
	count := 0
	for {
		r, ok := ip.s.peek()
		if !ok || r != ch {
			break
		}
		count++
		ip.s.advance()
	}
	if count < width {
		ip.s.reset(m)
		return false
	}
	ip.s.reset(m)
	if ip.env.lastChar == lastCharSpace {
		return false
	}
	if next, ok := ip.s.peekAt(width); ok && !isTransparent(next) && !isMarkupChar(next) {
		return false
	}
	for i := 0; i < width; i++ {
		ip.s.advance()
	}
	return true
}

// isRightOfOpenerFlanking reports whether the character immediately
// after the position m (the frame's prospective content start) is
// admissible as the start of flanking content: not transparent, not
// EOF. This is only the right-side half of the opener flanking rule;
// pFrame additionally rejects an opener whose lastChar is Other (i.e.
// one immediately preceded by non-space, non-transparent content).
func (ip *inlineParser) isRightOfOpenerFlanking(m mark) bool {
	save := ip.s.mark()
	ip.s.reset(m)
	ch, _ := ip.s.peek()
	for {
		r, ok := ip.s.peek()
		if !ok || r != ch {
			break
		}
		ip.s.advance()
	}
	r, ok := ip.s.peek()
	ip.s.reset(save)
	return ok && !isTransparent(r)
}

// pLink and pImage share bracketed-content parsing; allowLinks/
// allowImages on the environment prevent a link nested in link text
// and restrict image alt text to plain recursion depth.

func (ip *inlineParser) pLink() (Inline, bool) {
	if !ip.env.allowLinks {
		return Inline{}, false
	}
	m := ip.s.mark()
	pos := ip.s.pos_()
	if r, ok := ip.s.peek(); !ok || r != '[' {
		return Inline{}, false
	}
	return ip.pBracketed(LinkKind, m, pos)
}

func (ip *inlineParser) pImage() (Inline, bool) {
	if !ip.env.allowImages {
		return Inline{}, false
	}
	m := ip.s.mark()
	pos := ip.s.pos_()
	if r, ok := ip.s.peek(); !ok || r != '!' {
		return Inline{}, false
	}
	if r2, ok := ip.s.peekAt(1); !ok || r2 != '[' {
		return Inline{}, false
	}
	ip.s.advance()
	bracketMark := ip.s.mark()
	in, ok := ip.pBracketed(ImageKind, bracketMark, pos)
	if !ok && ip.err == nil {
		ip.s.reset(m)
	}
	return in, ok
}

func (ip *inlineParser) pBracketed(kind InlineKind, startMark mark, pos SourcePos) (Inline, bool) {
	ip.s.advance() // consume '['
	allowLinks, allowImages := false, true
	if kind == ImageKind {
		allowImages = false
	}
	inner := &inlineParser{s: ip.s, env: ip.env.withFrame(allowLinks, allowImages), defs: ip.defs}
	var children []Inline
	for {
		if ip.s.eof() {
			ip.s.reset(startMark)
			return Inline{}, false
		}
		if r, _ := ip.s.peek(); r == ']' {
			break
		}
		in, ok := inner.pInline()
		if inner.err != nil {
			ip.err = inner.err
			return Inline{}, false
		}
		if !ok {
			ip.s.reset(startMark)
			return Inline{}, false
		}
		inner.env.lastChar = lastCharClassOf(in)
		children = appendMergingPlain(children, in)
	}
	ip.s.advance() // consume ']'

	if r, ok := ip.s.peek(); ok && r == '(' {
		save := ip.s.mark()
		ip.s.advance()
		ip.s.scPrime()
		uri, hasURI := ip.pLinkURI()
		ip.s.scPrime()
		title, hasTitle := ip.pLinkTitle()
		ip.s.scPrime()
		if r, ok := ip.s.peek(); hasURI && ok && r == ')' {
			ip.s.advance()
			var titlePtr *string
			if hasTitle {
				t := title
				titlePtr = &t
			}
			return Inline{Kind: kind, Pos: pos, URI: uri, Title: titlePtr, Children: children}, true
		}
		ip.s.reset(save)
	}

	label, hasExplicitLabel := ip.pOptionalRefLabel()
	useLabel := label
	if !hasExplicitLabel || label == "" {
		useLabel = plainText(children)
	}
	def, found := ip.defs.Lookup(useLabel)
	if !found {
		diag := Diagnostic{
			Positions: []SourcePos{pos},
			Kind:      FancyCustom{Err: CouldNotFindReferenceDefinition{Label: useLabel, Candidates: closestLabels(useLabel, ip.defs.Labels())}},
		}
		ip.err = &diag
		return Inline{}, false
	}
	var titlePtr *string
	if def.TitlePresent {
		t := def.Title
		titlePtr = &t
	}
	return Inline{Kind: kind, Pos: pos, URI: def.URI, Title: titlePtr, Children: children}, true
}

func (ip *inlineParser) pLinkURI() (string, bool) {
	if r, ok := ip.s.peek(); ok && r == '<' {
		m := ip.s.mark()
		ip.s.advance()
		var sb strings.Builder
		for {
			r, ok := ip.s.peek()
			if !ok || isEOLRune(r) {
				ip.s.reset(m)
				return "", false
			}
			if r == '>' {
				ip.s.advance()
				break
			}
			if r == '\\' {
				if er, ok := ip.s.escapedChar(); ok {
					sb.WriteRune(er)
					continue
				}
			}
			sb.WriteRune(r)
			ip.s.advance()
		}
		return sb.String(), true
	}
	var sb strings.Builder
	depth := 0
	for {
		r, ok := ip.s.peek()
		if !ok || isSpaceTab(r) || isEOLRune(r) {
			break
		}
		if r == '(' {
			depth++
		}
		if r == ')' {
			if depth == 0 {
				break
			}
			depth--
		}
		if r == '\\' {
			if er, ok := ip.s.escapedChar(); ok {
				sb.WriteRune(er)
				continue
			}
		}
		sb.WriteRune(r)
		ip.s.advance()
	}
	if sb.Len() == 0 {
		return "", false
	}
	return sb.String(), true
}

func (ip *inlineParser) pLinkTitle() (string, bool) {
	r, ok := ip.s.peek()
	if !ok || (r != '"' && r != '\'' && r != '(') {
		return "", false
	}
	closeCh := r
	if closeCh == '(' {
		closeCh = ')'
	}
	m := ip.s.mark()
	ip.s.advance()
	var sb strings.Builder
	for {
		r, ok := ip.s.peek()
		if !ok {
			ip.s.reset(m)
			return "", false
		}
		if r == closeCh {
			ip.s.advance()
			break
		}
		if r == '\\' {
			if er, ok := ip.s.escapedChar(); ok {
				sb.WriteRune(er)
				continue
			}
		}
		sb.WriteRune(r)
		ip.s.advance()
	}
	return sb.String(), true
}

func (ip *inlineParser) pOptionalRefLabel() (string, bool) {
	m := ip.s.mark()
	if r, ok := ip.s.peek(); !ok || r != '[' {
		return "", false
	}
	ip.s.advance()
	var sb strings.Builder
	for {
		r, ok := ip.s.peek()
		if !ok {
			ip.s.reset(m)
			return "", false
		}
		if r == ']' {
			ip.s.advance()
			break
		}
		if r == '\\' {
			if er, ok := ip.s.escapedChar(); ok {
				sb.WriteRune(er)
				continue
			}
		}
		if r == '[' {
			ip.s.reset(m)
			return "", false
		}
		sb.WriteRune(r)
		ip.s.advance()
	}
	return sb.String(), true
}

// plainText flattens the literal text of inlines, recursing into
// frame children, for deriving a collapsed or shortcut reference
// label from its link text.
func plainText(inlines []Inline) string {
	var sb strings.Builder
	for _, in := range inlines {
		switch in.Kind {
		case PlainKind, CodeSpanKind:
			sb.WriteString(in.Text)
		default:
			sb.WriteString(plainText(in.Children))
		}
	}
	return sb.String()
}

// closestLabels returns up to three registered labels within edit
// distance 2 of label, ordered nearest first, as suggestions for a
// CouldNotFindReferenceDefinition diagnostic.
func closestLabels(label string, candidates []string) []string {
	type scored struct {
		label string
		dist  int
	}
	norm := normalizeLabel(label)
	var scoredList []scored
	for _, c := range candidates {
		d := levenshtein(norm, c)
		if d <= 2 {
			scoredList = append(scoredList, scored{c, d})
		}
	}
	sort.Slice(scoredList, func(i, j int) bool { return scoredList[i].dist < scoredList[j].dist })
	var out []string
	for i, s := range scoredList {
		if i >= 3 {
			break
		}
		out = append(out, s.label)
	}
	return out
}

func levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	prev := make([]int, len(br)+1)
	curr := make([]int, len(br)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		curr[0] = i
		for j := 1; j <= len(br); j++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}
	return prev[len(br)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
