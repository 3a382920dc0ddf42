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

// Package pb holds the wire messages exchanged by the evaluation and LBT
// propagation services, and the conversions between them and the pure
// pkg/bound, pkg/proposition and pkg/lbt domain types. The message shapes
// mirror the puan_core/puan_eval proto package this service's predecessor
// generated with tonic_build; they are hand-written here (there is no protoc
// available in this environment) and carried over the wire with the JSON
// codec registered in pkg/rpc, rather than with generated protobuf code.
package pb

import (
	"fmt"

	"github.com/ourstudio-se/puan-eval-go/pkg/batch"
	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
	"github.com/ourstudio-se/puan-eval-go/pkg/lbt"
	"github.com/ourstudio-se/puan-eval-go/pkg/proposition"
)

// Bound is the wire form of bound.Bound.
type Bound struct {
	Lower int64 `json:"lower"`
	Upper int64 `json:"upper"`
}

// FromBound converts a domain bound to its wire form.
func FromBound(b bound.Bound) Bound {
	return Bound{Lower: b.Lower, Upper: b.Upper}
}

// ToBound converts a wire bound to its domain form.
func (b Bound) ToBound() bound.Bound {
	return bound.New(b.Lower, b.Upper)
}

// Primitive is the wire form of proposition.Primitive. Default is nil when
// the primitive carries no default bound.
type Primitive struct {
	ID      string `json:"id"`
	Default *Bound `json:"default,omitempty"`
}

// Composite is the wire form of proposition.Composite.
type Composite struct {
	Direction uint8      `json:"direction"`
	Bias      int64      `json:"bias"`
	Variables []Variable `json:"variables"`
}

// Variable is the wire form of proposition.Variable: a oneof of Primitive or
// Composite, matching the proto's `variable.Part` oneof. Exactly one of the
// two fields is present on a well-formed message; neither present mirrors
// the "variable with neither variant" case of §7.
type Variable struct {
	Primitive *Primitive `json:"primitive,omitempty"`
	Composite *Composite `json:"composite,omitempty"`
}

// Fact is the wire form of proposition.Fact.
type Fact struct {
	ID    string `json:"id"`
	Value int64  `json:"value"`
}

// Interpretation is the wire form of proposition.Interpretation: a fact list
// rather than a map, since repeated facts over the wire are not required to
// be pre-deduplicated (NewInterpretation resolves duplicates, latter wins).
type Interpretation struct {
	Facts []Fact `json:"facts"`
}

// ToComposite converts a wire composite to its domain form.
func (c *Composite) ToComposite() (*proposition.Composite, error) {
	if c == nil {
		return nil, nil
	}

	out := &proposition.Composite{
		Direction: proposition.Direction(c.Direction),
		Bias:      c.Bias,
		Variables: make([]proposition.Variable, len(c.Variables)),
	}

	for i := range c.Variables {
		v, err := c.Variables[i].toVariable()
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}

		out.Variables[i] = v
	}

	return out, nil
}

func (v *Variable) toVariable() (proposition.Variable, error) {
	switch {
	case v.Primitive != nil:
		p := proposition.Primitive{ID: v.Primitive.ID}
		if v.Primitive.Default != nil {
			p.Default = v.Primitive.Default.ToBound()
			p.HasDefault = true
		}

		return proposition.FromPrimitive(p), nil
	case v.Composite != nil:
		c, err := v.Composite.ToComposite()
		if err != nil {
			return proposition.Variable{}, err
		}

		return proposition.FromComposite(*c), nil
	default:
		return proposition.Variable{}, nil
	}
}

// FromComposite converts a domain composite to its wire form.
func FromComposite(c *proposition.Composite) *Composite {
	if c == nil {
		return nil
	}

	out := &Composite{
		Direction: uint8(c.Direction),
		Bias:      c.Bias,
		Variables: make([]Variable, len(c.Variables)),
	}

	for i := range c.Variables {
		out.Variables[i] = fromVariable(&c.Variables[i])
	}

	return out
}

func fromVariable(v *proposition.Variable) Variable {
	switch {
	case v.Primitive != nil:
		w := Primitive{ID: v.Primitive.ID}
		if v.Primitive.HasDefault {
			d := FromBound(v.Primitive.Default)
			w.Default = &d
		}

		return Variable{Primitive: &w}
	case v.Composite != nil:
		return Variable{Composite: FromComposite(v.Composite)}
	default:
		return Variable{}
	}
}

// ToInterpretation converts a wire interpretation to its domain form.
func (i *Interpretation) ToInterpretation() proposition.Interpretation {
	if i == nil {
		return proposition.NewInterpretation(nil)
	}

	facts := make([]proposition.Fact, len(i.Facts))
	for j, f := range i.Facts {
		facts[j] = proposition.Fact{ID: f.ID, Value: f.Value}
	}

	return proposition.NewInterpretation(facts)
}

// CoefRelation is the wire form of lbt.CoefRelation.
type CoefRelation struct {
	ID          string `json:"id"`
	Coefficient int64  `json:"coefficient"`
}

// BinaryInequalityConstraint is the wire form of lbt.BIC.
type BinaryInequalityConstraint struct {
	Relations []CoefRelation `json:"relations"`
}

// BicOrBound is the wire form of lbt.Node: a oneof of
// BinaryInequalityConstraint or Bound.
type BicOrBound struct {
	Bic   *BinaryInequalityConstraint `json:"bic,omitempty"`
	Bound *Bound                      `json:"bound,omitempty"`
}

// LinearBoundedTree is the wire form of lbt.LBT.
type LinearBoundedTree struct {
	Nodes map[string]BicOrBound `json:"nodes"`
}

// ToLBT converts a wire tree to its domain form.
func (t *LinearBoundedTree) ToLBT() lbt.LBT {
	out := make(lbt.LBT, len(t.Nodes))

	for k, v := range t.Nodes {
		switch {
		case v.Bic != nil:
			relations := make([]lbt.CoefRelation, len(v.Bic.Relations))
			for i, r := range v.Bic.Relations {
				relations[i] = lbt.CoefRelation{ID: r.ID, Coefficient: r.Coefficient}
			}

			out[k] = lbt.FromBIC(lbt.BIC{Relations: relations})
		case v.Bound != nil:
			out[k] = lbt.FromBound(v.Bound.ToBound())
		}
	}

	return out
}

// FromLBT converts a domain tree to its wire form.
func FromLBT(t lbt.LBT) *LinearBoundedTree {
	out := &LinearBoundedTree{Nodes: make(map[string]BicOrBound, len(t))}

	for k, n := range t {
		switch {
		case n.IsBound():
			b := FromBound(*n.Bound)
			out.Nodes[k] = BicOrBound{Bound: &b}
		case n.BIC != nil:
			relations := make([]CoefRelation, len(n.BIC.Relations))
			for i, r := range n.BIC.Relations {
				relations[i] = CoefRelation{ID: r.ID, Coefficient: r.Coefficient}
			}

			out.Nodes[k] = BicOrBound{Bic: &BinaryInequalityConstraint{Relations: relations}}
		}
	}

	return out
}

// PropositionInterpretationPair is the wire form of batch.Pair.
type PropositionInterpretationPair struct {
	Proposition    *Composite      `json:"proposition,omitempty"`
	Interpretation *Interpretation `json:"interpretation,omitempty"`
}

// Pair is the spec's name for PropositionInterpretationPair, used by the
// EvaluationService.EvaluatePairs/EvaluatePairStreamed methods.
type Pair = PropositionInterpretationPair

// PairSet is the request message of EvaluationService.EvaluatePairs: an
// ordered list of pairs, evaluated positionally (§4.3's "pair batch").
type PairSet struct {
	Pairs []Pair `json:"pairs"`
}

// ToPair converts a wire pair to its batch.Pair domain form.
func (p *Pair) ToPair() (batch.Pair, error) {
	c, err := p.Proposition.ToComposite()
	if err != nil {
		return batch.Pair{}, fmt.Errorf("proposition: %w", err)
	}

	var interp proposition.Interpretation
	if p.Interpretation != nil {
		interp = p.Interpretation.ToInterpretation()
	}

	return batch.Pair{Proposition: c, Interpretation: interp}, nil
}

// PropositionInterpretationSet is the request message of
// EvaluationService.EvaluateProduct: the Cartesian product input.
type PropositionInterpretationSet struct {
	Propositions    []Composite      `json:"propositions"`
	Interpretations []Interpretation `json:"interpretations"`
}

// BoundSet is a single row of a BoundCollection.
type BoundSet struct {
	Bounds []Bound `json:"bounds"`
}

// BoundCollection is the response message of EvaluationService.EvaluateProduct.
type BoundCollection struct {
	BoundSets []BoundSet `json:"bound_sets"`
}

// BoundResult is the per-element outbound message of
// EvaluationService.EvaluatePairStreamed. A gRPC server-streaming response
// only carries a single call-level status, not a per-message one, so a
// decode/validation error on one inbound pair (§7) is carried as a message
// field instead of a stream-aborting status - the stream keeps running and
// element k's error surfaces as BoundResult.Error at position k.
type BoundResult struct {
	Bound *Bound `json:"bound,omitempty"`
	Error string `json:"error,omitempty"`
}

// DescribeSchemasRequest is the (empty) request of
// LbtEvaluationService.DescribeSchemas, this service's stand-in for gRPC
// server reflection: there is no protoc in this environment to generate a
// real reflection-compliant descriptor set, so DescribeSchemas instead
// returns a human-readable summary of the wire messages above.
type DescribeSchemasRequest struct{}

// DescribeSchemasResponse enumerates the JSON shapes of the evaluation and
// LBT messages, keyed by message name. BoundResult and the DescribeSchemas
// request/response are not listed.
type DescribeSchemasResponse struct {
	Messages map[string]string `json:"messages"`
}
