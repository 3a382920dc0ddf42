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

// Package batch provides the three evaluator batching shapes (per-pair,
// Cartesian product, streamed pairs) and the streamed LBT propagator, as
// pure combinators over pkg/proposition and pkg/lbt. Drivers hold no state
// across requests and do not batch across pairs.
package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
	"github.com/ourstudio-se/puan-eval-go/pkg/lbt"
	"github.com/ourstudio-se/puan-eval-go/pkg/proposition"
)

// Pair is a single (proposition, interpretation) evaluation request.
type Pair struct {
	Proposition    *proposition.Composite
	Interpretation proposition.Interpretation
}

// ErrIncompletePair is returned when a pair is missing its proposition or
// its interpretation (§7, kind 2).
var ErrIncompletePair = errors.New("pair is missing its proposition or interpretation")

func (p Pair) validate() error {
	if p.Proposition == nil || p.Interpretation == nil {
		return ErrIncompletePair
	}

	return proposition.Validate(p.Proposition, p.Interpretation)
}

// EvaluatePairs evaluates each pair positionally, returning one bound per
// input pair in input order. It is a unary batch: any malformed pair fails
// the whole call, matching §7's "invalid-argument status on unary calls".
func EvaluatePairs(pairs []Pair) ([]bound.Bound, error) {
	bounds := make([]bound.Bound, len(pairs))

	for i, pair := range pairs {
		if err := pair.validate(); err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}

		bounds[i] = proposition.Evaluate(pair.Proposition, pair.Interpretation)
	}

	return bounds, nil
}

// EvaluateProduct evaluates the Cartesian product of propositions and
// interpretations, preserving both orderings: result[i][j] is
// evaluate(propositions[i], interpretations[j]).
func EvaluateProduct(
	propositions []*proposition.Composite,
	interpretations []proposition.Interpretation,
) ([][]bound.Bound, error) {
	result := make([][]bound.Bound, len(propositions))

	for i, p := range propositions {
		row := make([]bound.Bound, len(interpretations))

		for j, interp := range interpretations {
			if err := proposition.Validate(p, interp); err != nil {
				return nil, fmt.Errorf("proposition %d x interpretation %d: %w", i, j, err)
			}

			row[j] = proposition.Evaluate(p, interp)
		}

		result[i] = row
	}

	return result, nil
}

// PairInput is one element of an inbound pair stream: either a successfully
// decoded pair, or the transport-level decode error for that element (§7:
// "a decode error on input element k becomes the k-th output element").
type PairInput struct {
	Pair Pair
	Err  error
}

// PairResult is one element of a streamed pair evaluation: either a bound,
// or the decode/validation error for that specific element.
type PairResult struct {
	Bound bound.Bound
	Err   error
}

// EvaluatePairStream evaluates a lazy sequence of pairs, emitting one result
// per input element in order on the returned channel. The returned channel
// is closed once in is drained or ctx is cancelled.
//
// If the consumer stops draining the output channel, the next send blocks
// until ctx is cancelled; the producer never evaluates ahead of what the
// consumer has room for, and abandons draining in on cancellation - not
// mid-evaluation (§5).
func EvaluatePairStream(ctx context.Context, in <-chan PairInput) <-chan PairResult {
	out := make(chan PairResult)

	go func() {
		defer close(out)

		for {
			var (
				elem PairInput
				more bool
			)

			select {
			case elem, more = <-in:
			case <-ctx.Done():
				return
			}

			if !more {
				return
			}

			select {
			case out <- evaluatePairElement(elem):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func evaluatePairElement(elem PairInput) PairResult {
	if elem.Err != nil {
		return PairResult{Err: elem.Err}
	}

	if err := elem.Pair.validate(); err != nil {
		return PairResult{Err: err}
	}

	return PairResult{Bound: proposition.Evaluate(elem.Pair.Proposition, elem.Pair.Interpretation)}
}

// PropagateLBTStream propagates a lazy sequence of LBTs, emitting one
// propagated LBT per input element in order. Propagation itself never
// errors (§7, kind 3), so there is no per-element error channel here.
func PropagateLBTStream(ctx context.Context, in <-chan lbt.LBT) <-chan lbt.LBT {
	out := make(chan lbt.LBT)

	go func() {
		defer close(out)

		for {
			var (
				tree lbt.LBT
				more bool
			)

			select {
			case tree, more = <-in:
			case <-ctx.Done():
				return
			}

			if !more {
				return
			}

			result := lbt.Propagate(tree)

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}
