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

package mmark_test

import (
	"fmt"

	"github.com/sjakobi/mmark"
)

func Example() {
	doc, diags := mmark.Parse("hello.md", []byte("Hello, **World**!\n"))
	if diags != nil {
		panic(diags)
	}
	for _, in := range doc.Blocks[0].Content {
		fmt.Printf("%v %q\n", in.Kind, in.Text)
	}
	// Output:
	// Plain "Hello, "
	// Strong ""
	// Plain "!"
}

func ExampleParse_frontMatter() {
	input := "---\n" +
		"title: Hello\n" +
		"---\n" +
		"# {{title}}\n"

	doc, diags := mmark.Parse("post.md", []byte(input))
	if diags != nil {
		panic(diags)
	}
	values := doc.YAML.(map[string]any)
	fmt.Println(values["title"])
	// Output:
	// Hello
}

func ExampleParse_diagnostics() {
	input := "[a]: /a\n" +
		"[a]: /a-again\n" +
		"[missing]\n"

	_, diags := mmark.Parse("refs.md", []byte(input))
	for _, d := range diags {
		fmt.Println(d.Position().Line, d.Kind)
	}
	// Output:
	// 2 duplicate reference definition for label "a"
	// 3 could not find reference definition for label "missing"
}
