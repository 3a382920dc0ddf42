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
package batch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
	"github.com/ourstudio-se/puan-eval-go/pkg/lbt"
	"github.com/ourstudio-se/puan-eval-go/pkg/proposition"
)

func satisfiedComposite() *proposition.Composite {
	return &proposition.Composite{
		Direction: proposition.Positive,
		Bias:      0,
		Variables: []proposition.Variable{
			proposition.FromPrimitive(proposition.NewPrimitive("x", bound.New(0, 1))),
		},
	}
}

func Test_EvaluatePairs_01(t *testing.T) {
	pairs := []Pair{
		{Proposition: satisfiedComposite(), Interpretation: proposition.NewInterpretation([]proposition.Fact{{ID: "x", Value: 1}})},
		{Proposition: satisfiedComposite(), Interpretation: proposition.NewInterpretation(nil)},
	}

	got, err := EvaluatePairs(pairs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}

	for i, b := range got {
		if b != bound.Definite(1) {
			t.Errorf("result %d: expected [1,1], got %s", i, b)
		}
	}
}

func Test_EvaluatePairs_IncompletePair(t *testing.T) {
	pairs := []Pair{{Proposition: satisfiedComposite()}}

	_, err := EvaluatePairs(pairs)
	if !errors.Is(err, ErrIncompletePair) {
		t.Errorf("expected ErrIncompletePair, got %v", err)
	}
}

func Test_EvaluatePairs_MalformedProposition(t *testing.T) {
	pairs := []Pair{{
		Proposition:    &proposition.Composite{Variables: []proposition.Variable{{}}},
		Interpretation: proposition.NewInterpretation(nil),
	}}

	_, err := EvaluatePairs(pairs)
	if !errors.Is(err, proposition.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func Test_EvaluateProduct_Shape(t *testing.T) {
	props := []*proposition.Composite{satisfiedComposite(), satisfiedComposite()}
	interps := []proposition.Interpretation{
		proposition.NewInterpretation([]proposition.Fact{{ID: "x", Value: 1}}),
		proposition.NewInterpretation([]proposition.Fact{{ID: "x", Value: 0}}),
		proposition.NewInterpretation(nil),
	}

	got, err := EvaluateProduct(props, interps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}

	for _, row := range got {
		if len(row) != 3 {
			t.Fatalf("expected 3 columns, got %d", len(row))
		}
	}

	if got[0][0] != bound.Definite(1) {
		t.Errorf("expected [0][0] = [1,1], got %s", got[0][0])
	}

	if got[0][1] != bound.Definite(1) {
		t.Errorf("expected [0][1] = [1,1], got %s", got[0][1])
	}
}

func Test_EvaluatePairStream_Order(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan PairInput)

	go func() {
		defer close(in)

		in <- PairInput{Pair: Pair{Proposition: satisfiedComposite(), Interpretation: proposition.NewInterpretation([]proposition.Fact{{ID: "x", Value: 1}})}}
		in <- PairInput{Err: errors.New("boom")}
		in <- PairInput{Pair: Pair{Proposition: satisfiedComposite(), Interpretation: proposition.NewInterpretation([]proposition.Fact{{ID: "x", Value: 0}})}}
	}()

	out := EvaluatePairStream(ctx, in)

	var results []PairResult
	for r := range out {
		results = append(results, r)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	if results[0].Err != nil || results[0].Bound != bound.Definite(1) {
		t.Errorf("result 0: expected [1,1], got %+v", results[0])
	}

	if results[1].Err == nil {
		t.Errorf("result 1: expected propagated error")
	}

	if results[2].Err != nil || results[2].Bound != bound.Definite(1) {
		t.Errorf("result 2: expected [1,1], got %+v", results[2])
	}
}

func Test_EvaluatePairStream_CancelStopsProducer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	in := make(chan PairInput)
	out := EvaluatePairStream(ctx, in)

	cancel()

	select {
	case _, more := <-out:
		if more {
			t.Errorf("expected no results after cancellation")
		}
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for output channel to close")
	}
}

func Test_PropagateLBTStream_Order(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	in := make(chan lbt.LBT)

	go func() {
		defer close(in)

		in <- lbt.LBT{
			"a": lbt.FromBound(bound.New(1, 1)),
			"r": lbt.FromBIC(lbt.BIC{Relations: []lbt.CoefRelation{{ID: "a", Coefficient: 1}}}),
		}
	}()

	out := PropagateLBTStream(ctx, in)

	result := <-out
	if !result["r"].IsBound() {
		t.Errorf("expected r to be reduced")
	}

	if _, more := <-out; more {
		t.Errorf("expected channel to close after single element")
	}
}
