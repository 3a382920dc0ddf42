// Copyright go-puaneval Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lbt

import (
	"reflect"
	"testing"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
)

func check_Bound_Node(t *testing.T, n Node, lower, upper int64) {
	if !n.IsBound() {
		t.Fatalf("expected a bound node, got %v", n)
	}

	if n.Bound.Lower != lower || n.Bound.Upper != upper {
		t.Errorf("expected [%d,%d], got %s", lower, upper, n.Bound)
	}
}

// Scenario 5: reduction to fixpoint.
func Test_Propagate_01(t *testing.T) {
	t0 := LBT{
		"a": FromBound(bound.New(1, 1)),
		"b": FromBound(bound.New(0, 1)),
		"r": FromBIC(BIC{Relations: []CoefRelation{{"a", 1}, {"b", -1}}}),
	}

	out := Propagate(t0)

	check_Bound_Node(t, out["r"], 1, 1)
}

// Scenario 6: dangling child leaves the BIC unreachable and unchanged.
func Test_Propagate_Dangling(t *testing.T) {
	t0 := LBT{
		"r": FromBIC(BIC{Relations: []CoefRelation{{"missing", 1}}}),
	}

	out := Propagate(t0)

	if out["r"].IsBound() {
		t.Errorf("expected r to remain unreduced")
	}

	if !reflect.DeepEqual(out["r"], t0["r"]) {
		t.Errorf("expected r to be unchanged")
	}
}

// A chain a -> b -> c of BICs should all resolve once the root bound is
// known, regardless of worklist visitation order.
func Test_Propagate_Chain(t *testing.T) {
	t0 := LBT{
		"c": FromBound(bound.New(1, 1)),
		"b": FromBIC(BIC{Relations: []CoefRelation{{"c", 1}}}),
		"a": FromBIC(BIC{Relations: []CoefRelation{{"b", 1}}}),
	}

	out := Propagate(t0)

	check_Bound_Node(t, out["a"], 1, 1)
	check_Bound_Node(t, out["b"], 1, 1)
}

// A two-cycle a <-> b, with neither reachable to a bound, leaves both
// unreduced and terminates.
func Test_Propagate_Cycle(t *testing.T) {
	t0 := LBT{
		"a": FromBIC(BIC{Relations: []CoefRelation{{"b", 1}}}),
		"b": FromBIC(BIC{Relations: []CoefRelation{{"a", 1}}}),
	}

	out := Propagate(t0)

	if out["a"].IsBound() || out["b"].IsBound() {
		t.Errorf("expected cycle members to remain unreduced")
	}
}

// Key set is preserved.
func Test_Propagate_PreservesKeySet(t *testing.T) {
	t0 := LBT{
		"a": FromBound(bound.New(0, 0)),
		"r": FromBIC(BIC{Relations: []CoefRelation{{"a", 1}}}),
		"d": FromBIC(BIC{Relations: []CoefRelation{{"missing", 1}}}),
	}

	out := Propagate(t0)

	if len(out) != len(t0) {
		t.Fatalf("expected %d keys, got %d", len(t0), len(out))
	}

	for k := range t0 {
		if _, ok := out[k]; !ok {
			t.Errorf("missing key %q in output", k)
		}
	}
}

// Propagation is idempotent.
func Test_Propagate_Idempotent(t *testing.T) {
	t0 := LBT{
		"a": FromBound(bound.New(1, 1)),
		"b": FromBound(bound.New(0, 1)),
		"r": FromBIC(BIC{Relations: []CoefRelation{{"a", 1}, {"b", -1}}}),
		"d": FromBIC(BIC{Relations: []CoefRelation{{"missing", 1}}}),
	}

	once := Propagate(t0)
	twice := Propagate(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected propagation to be idempotent")
	}
}

// Propagation is monotone: a key already a Bound in the input is the same
// Bound in the output.
func Test_Propagate_Monotone(t *testing.T) {
	t0 := LBT{
		"a": FromBound(bound.New(3, 5)),
	}

	out := Propagate(t0)

	check_Bound_Node(t, out["a"], 3, 5)
}

// A many-hop dependency chain exercises the dependents-wakeup path beyond a
// single hop.
func Test_Propagate_DeepChain(t *testing.T) {
	t0 := LBT{
		"n0": FromBound(bound.New(1, 1)),
	}

	const depth = 25
	for i := 1; i <= depth; i++ {
		from := "n" + itoa(i-1)
		to := "n" + itoa(i)
		t0[to] = FromBIC(BIC{Relations: []CoefRelation{{from, 1}}})
	}

	out := Propagate(t0)

	check_Bound_Node(t, out["n"+itoa(depth)], 1, 1)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}

	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}

	return string(digits)
}
