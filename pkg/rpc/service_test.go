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
package rpc

import (
	"context"
	"testing"

	"github.com/ourstudio-se/puan-eval-go/pkg/bound"
	"github.com/ourstudio-se/puan-eval-go/pkg/rpc/pb"
)

func Test_LBTEvaluationServer_PropagateLbt(t *testing.T) {
	a := pb.FromBound(bound.New(1, 1))
	req := &pb.LinearBoundedTree{Nodes: map[string]pb.BicOrBound{
		"a": {Bound: &a},
		"r": {Bic: &pb.BinaryInequalityConstraint{Relations: []pb.CoefRelation{{ID: "a", Coefficient: 1}}}},
	}}

	resp, err := (LBTEvaluationServer{}).PropagateLbt(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Nodes["r"].Bound == nil || resp.Nodes["r"].Bound.Lower != 1 {
		t.Errorf("expected r to reduce to [1,1], got %+v", resp.Nodes["r"])
	}
}

func Test_LBTEvaluationServer_DescribeSchemas(t *testing.T) {
	resp, err := (LBTEvaluationServer{}).DescribeSchemas(context.Background(), &pb.DescribeSchemasRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := resp.Messages["Bound"]; !ok {
		t.Errorf("expected schema table to describe Bound")
	}
}

func Test_EvaluationServer_EvaluatePairs(t *testing.T) {
	def := pb.FromBound(bound.New(0, 1))
	req := &pb.PairSet{Pairs: []pb.Pair{
		{
			Proposition:    &pb.Composite{Variables: []pb.Variable{{Primitive: &pb.Primitive{ID: "x", Default: &def}}}},
			Interpretation: &pb.Interpretation{Facts: []pb.Fact{{ID: "x", Value: 1}}},
		},
	}}

	resp, err := (EvaluationServer{}).EvaluatePairs(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Bounds) != 1 || resp.Bounds[0].Lower != 1 || resp.Bounds[0].Upper != 1 {
		t.Errorf("expected [[1,1]], got %+v", resp.Bounds)
	}
}

func Test_EvaluationServer_EvaluatePairs_Invalid(t *testing.T) {
	req := &pb.PairSet{Pairs: []pb.Pair{{}}}

	_, err := (EvaluationServer{}).EvaluatePairs(context.Background(), req)
	if err == nil {
		t.Errorf("expected an error for an incomplete pair")
	}
}

func Test_EvaluationServer_EvaluateProduct(t *testing.T) {
	def := pb.FromBound(bound.New(0, 1))
	prop := pb.Composite{Variables: []pb.Variable{{Primitive: &pb.Primitive{ID: "x", Default: &def}}}}
	req := &pb.PropositionInterpretationSet{
		Propositions:    []pb.Composite{prop},
		Interpretations: []pb.Interpretation{{Facts: []pb.Fact{{ID: "x", Value: 1}}}, {}},
	}

	resp, err := (EvaluationServer{}).EvaluateProduct(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.BoundSets) != 1 || len(resp.BoundSets[0].Bounds) != 2 {
		t.Fatalf("unexpected shape: %+v", resp.BoundSets)
	}

	if resp.BoundSets[0].Bounds[0].Lower != 1 {
		t.Errorf("expected first column to be [1,1], got %+v", resp.BoundSets[0].Bounds[0])
	}
}
