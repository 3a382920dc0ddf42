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

// Package lbt propagates interval bounds through a Linear Bounded Tree: a
// flat, identifier-keyed map of Binary Inequality Constraints (BICs) and
// bounds, reduced to a fixpoint where every reachable-and-reducible node has
// become a bound.
package lbt

import (
	log "github.com/sirupsen/logrus"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
	"github.com/ourstudio-se/puan-eval-go/pkg/util/collection/queue"
)

// CoefRelation is a single (id, coefficient) term of a BIC.
type CoefRelation struct {
	ID          string
	Coefficient int64
}

// BIC is a Binary Inequality Constraint: an ordered sequence of relations
// representing "sum(coefficient_i * value(id_i)) >= 0".
type BIC struct {
	Relations []CoefRelation
}

// Node is a tagged union of BIC or Bound.  Exactly one field is set.
type Node struct {
	BIC   *BIC
	Bound *bound.Bound
}

// FromBIC wraps a BIC as a node.
func FromBIC(b BIC) Node {
	return Node{BIC: &b}
}

// FromBound wraps a bound as a node.
func FromBound(b bound.Bound) Node {
	return Node{Bound: &b}
}

// IsBound reports whether this node has already been reduced.
func (n Node) IsBound() bool {
	return n.Bound != nil
}

// LBT is a mapping from node identifier to node.  BIC relations refer to
// other identifiers in the same map; the map need not be acyclic, tree
// shaped, or connected.
type LBT map[string]Node

// Propagate rewrites lbt so that every reachable-and-reducible node becomes
// a Bound, leaving unreachable or cyclic nodes as BICs.  The key set of the
// result is identical to the input's.
//
// This runs a FIFO worklist to fixpoint.  A key whose BIC blocks on an
// unreduced child registers itself as a dependent of that child instead of
// being re-enqueued blindly; it is only retried once that child resolves.
// This guarantees termination under cycles without a global pop cap: each
// key is enqueued at most once per relation edge pointing into it, plus
// once initially, so total work is bounded by O(nodes + edges).
func Propagate(t LBT) LBT {
	out := make(LBT, len(t))
	for k, v := range t {
		out[k] = v
	}

	var (
		work       = queue.NewQueue[string]()
		queued     = make(map[string]bool, len(out))
		dependents = make(map[string][]string)
	)

	for k := range out {
		work.Enqueue(k)
		queued[k] = true
	}

	reductions := 0

	for !work.IsEmpty() {
		k := work.Dequeue()
		queued[k] = false

		node := out[k]
		if node.IsBound() {
			continue
		}

		reduced, blockedOn, unreachable := tryReduce(node.BIC, out)

		switch {
		case unreachable:
			// A referenced id is absent from the map entirely; this BIC can
			// never reduce. Leave it as-is, permanently.
		case blockedOn != "":
			dependents[blockedOn] = append(dependents[blockedOn], k)
		default:
			out[k] = FromBound(reduced)
			reductions++

			for _, dep := range dependents[k] {
				if !queued[dep] {
					work.Enqueue(dep)
					queued[dep] = true
				}
			}

			delete(dependents, k)
		}
	}

	log.Debugf("lbt propagation reduced %d of %d nodes to bounds", reductions, len(out))

	return out
}

// tryReduce attempts to reduce a single BIC given the current state of the
// map. It returns the reduced bound when every relation resolved; otherwise
// it returns the id of the first unresolved (still-BIC) child it blocked on,
// or unreachable=true if some relation's id is not present in the map at
// all.
func tryReduce(b *BIC, nodes LBT) (reduced bound.Bound, blockedOn string, unreachable bool) {
	var lower, upper int64

	for _, rel := range b.Relations {
		child, exists := nodes[rel.ID]
		if !exists {
			return bound.Bound{}, "", true
		}

		if !child.IsBound() {
			return bound.Bound{}, rel.ID, false
		}

		scaled := child.Bound.Scale(rel.Coefficient)
		lower += scaled.Lower
		upper += scaled.Upper
	}

	return bound.Truth(bound.New(lower, upper)), "", false
}
