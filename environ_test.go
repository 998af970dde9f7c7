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

import "testing"

func TestBlockEnvSubEnvSharesDefs(t *testing.T) {
	defs := NewReferenceTable()
	env := blockEnv{refLevel: 1, allowNaked: false, quoted: false, defs: defs}
	sub := env.subEnv(true, 5)

	if sub.allowNaked != true {
		t.Errorf("sub.allowNaked = %v; want true", sub.allowNaked)
	}
	if sub.refLevel != 5 {
		t.Errorf("sub.refLevel = %v; want 5", sub.refLevel)
	}
	if sub.defs != env.defs {
		t.Error("subEnv copied the reference table instead of sharing it")
	}

	sub.defs.Insert("a", Definition{URI: "/a"})
	if _, ok := env.defs.Lookup("a"); !ok {
		t.Error("insertion via sub.defs was not visible through env.defs")
	}
}

func TestBlockEnvSubEnvPreservesQuoted(t *testing.T) {
	env := blockEnv{refLevel: 1, quoted: true, defs: NewReferenceTable()}
	sub := env.subEnv(true, 3)
	if !sub.quoted {
		t.Error("subEnv reset quoted; want it left untouched")
	}
}

func TestBlockEnvSubEnvDoesNotMutateOriginal(t *testing.T) {
	env := blockEnv{refLevel: 1, allowNaked: false, defs: NewReferenceTable()}
	_ = env.subEnv(true, 9)
	if env.allowNaked != false || env.refLevel != 1 {
		t.Errorf("env was mutated by subEnv: %+v", env)
	}
}

func TestInlineEnvWithFrame(t *testing.T) {
	env := topLevelInlineEnv()
	env.lastChar = lastCharOther
	env.allowEmpty = true

	inner := env.withFrame(false, true)
	if inner.allowEmpty {
		t.Error("withFrame left allowEmpty true; want false for a nested frame")
	}
	if inner.allowLinks {
		t.Error("withFrame did not apply allowLinks=false")
	}
	if !inner.allowImages {
		t.Error("withFrame did not apply allowImages=true")
	}
	if inner.lastChar != lastCharNothing {
		t.Errorf("inner.lastChar = %v; want lastCharNothing", inner.lastChar)
	}
	if env.lastChar != lastCharOther {
		t.Error("withFrame mutated the original environment")
	}
}

func TestTopLevelInlineEnv(t *testing.T) {
	env := topLevelInlineEnv()
	if env.allowEmpty {
		t.Error("topLevelInlineEnv().allowEmpty = true; want false")
	}
	if !env.allowLinks || !env.allowImages {
		t.Error("topLevelInlineEnv() should allow both links and images")
	}
}
