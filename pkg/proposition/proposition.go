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

// Package proposition implements the recursive evaluator over composite
// propositions: a tree of weighted sub-propositions and primitive variables,
// each carrying a known integer bound, folded against a partial
// interpretation into a single truth bound.
package proposition

import (
	"errors"
	"fmt"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
)

// Direction tags a Composite as asserting its weighted sum directly
// (Positive) or its negation (Negative).
type Direction uint8

const (
	// Positive composites assert "sum(children) + bias >= 0" directly.
	Positive Direction = 0
	// Negative composites assert the same inequality over the negation of
	// every child's contribution.
	Negative Direction = 1
)

// Primitive is a leaf variable identified by an id, carrying a default
// bound used whenever an interpretation has no fact for that id.
type Primitive struct {
	ID string
	// Default is only meaningful when HasDefault is true; a Primitive
	// without a default bound is malformed unless every evaluation
	// supplies an interpretation entry for it (see Validate).
	Default    bound.Bound
	HasDefault bool
}

// NewPrimitive constructs a primitive with a default bound.
func NewPrimitive(id string, def bound.Bound) Primitive {
	return Primitive{ID: id, Default: def, HasDefault: true}
}

// Composite is a non-leaf proposition representing
// "sum(signed children) + bias >= 0", where signed negates a child's bound
// when Direction is Negative.
type Composite struct {
	Direction Direction
	Bias      int64
	Variables []Variable
}

// Variable is a tagged union of Primitive or Composite.  Exactly one of the
// two fields should be set; see Validate.
type Variable struct {
	Primitive *Primitive
	Composite *Composite
}

// FromPrimitive wraps a primitive as a variable.
func FromPrimitive(p Primitive) Variable {
	return Variable{Primitive: &p}
}

// FromComposite wraps a composite as a variable.
func FromComposite(c Composite) Variable {
	return Variable{Composite: &c}
}

// Fact is a single (id, value) assignment.
type Fact struct {
	ID    string
	Value int64
}

// Interpretation is a partial assignment of primitive ids to integer values.
type Interpretation map[string]int64

// NewInterpretation projects a set of facts to an id->value mapping.  If the
// same id appears more than once, the latter occurrence wins.
func NewInterpretation(facts []Fact) Interpretation {
	m := make(Interpretation, len(facts))

	for _, f := range facts {
		m[f.ID] = f.Value
	}

	return m
}

// ErrMalformed is wrapped by every input-shape error this package reports.
var ErrMalformed = errors.New("malformed proposition input")

// Validate walks a composite together with the interpretation it will be
// evaluated against, and reports the input-shape errors of §7: a variable
// carrying neither a primitive nor a composite, or a primitive with no
// interpretation entry and no default bound.  Evaluate itself never errors -
// validation is expected to run once, at the boundary where a request is
// decoded, not on every recursive step.
func Validate(c *Composite, interp Interpretation) error {
	for i := range c.Variables {
		v := &c.Variables[i]

		switch {
		case v.Composite != nil:
			if err := Validate(v.Composite, interp); err != nil {
				return err
			}
		case v.Primitive != nil:
			if _, ok := interp[v.Primitive.ID]; !ok && !v.Primitive.HasDefault {
				return fmt.Errorf("%w: primitive %q has no interpretation entry and no default bound",
					ErrMalformed, v.Primitive.ID)
			}
		default:
			return fmt.Errorf("%w: variable has neither primitive nor composite", ErrMalformed)
		}
	}

	return nil
}

// Evaluate folds a composite proposition together with an interpretation
// into its truth bound, always one of [0,0], [0,1] or [1,1].  It is pure and
// total: a variable carrying neither variant (which Validate would reject)
// simply contributes nothing, matching §4.1's algorithm exactly.
func Evaluate(c *Composite, interp Interpretation) bound.Bound {
	acc := bound.Zero

	for i := range c.Variables {
		child, ok := evaluateVariable(&c.Variables[i], interp)
		if !ok {
			continue
		}

		acc = acc.Add(child.FlipIf(c.Direction == Negative))
	}

	return bound.Truth(acc.Add(bound.Definite(c.Bias)))
}

func evaluateVariable(v *Variable, interp Interpretation) (bound.Bound, bool) {
	switch {
	case v.Primitive != nil:
		if val, ok := interp[v.Primitive.ID]; ok {
			return bound.Definite(val), true
		}

		return v.Primitive.Default, true
	case v.Composite != nil:
		return Evaluate(v.Composite, interp), true
	default:
		return bound.Bound{}, false
	}
}
