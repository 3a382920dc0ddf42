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
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ourstudio-se/puan-eval-go/pkg/batch"
	"github.com/ourstudio-se/puan-eval-go/pkg/proposition"
	"github.com/ourstudio-se/puan-eval-go/pkg/rpc/pb"
	"github.com/ourstudio-se/puan-eval-go/pkg/util"
)

// EvaluationServer implements puan_eval.EvaluationService: the three batch
// shapes of §4.3 (pair, product, streamed pair), wired onto pkg/batch.
type EvaluationServer struct{}

// EvaluatePairs evaluates a list of pairs positionally. A malformed pair
// fails the whole call with INVALID_ARGUMENT (§7: input-shape errors are
// translated to that status only at the transport boundary).
func (EvaluationServer) EvaluatePairs(_ context.Context, req *pb.PairSet) (*pb.BoundSet, error) {
	pairs := make([]batch.Pair, len(req.Pairs))

	for i := range req.Pairs {
		p, err := req.Pairs[i].ToPair()
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "pair %d: %v", i, err)
		}

		pairs[i] = p
	}

	bounds, err := batch.EvaluatePairs(pairs)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	out := &pb.BoundSet{Bounds: make([]pb.Bound, len(bounds))}
	for i, b := range bounds {
		out.Bounds[i] = pb.FromBound(b)
	}

	return out, nil
}

// EvaluateProduct evaluates the Cartesian product of propositions and
// interpretations.
func (EvaluationServer) EvaluateProduct(_ context.Context, req *pb.PropositionInterpretationSet) (*pb.BoundCollection, error) {
	stats := util.NewPerfStats()

	props := make([]*proposition.Composite, len(req.Propositions))

	for i := range req.Propositions {
		c, err := req.Propositions[i].ToComposite()
		if err != nil {
			stats.Log("EvaluateProduct", 0)
			return nil, status.Errorf(codes.InvalidArgument, "proposition %d: %v", i, err)
		}

		props[i] = c
	}

	interps := make([]proposition.Interpretation, len(req.Interpretations))
	for i := range req.Interpretations {
		interps[i] = req.Interpretations[i].ToInterpretation()
	}

	rows, err := batch.EvaluateProduct(props, interps)
	if err != nil {
		stats.Log("EvaluateProduct", 0)
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	out := &pb.BoundCollection{BoundSets: make([]pb.BoundSet, len(rows))}
	for i, row := range rows {
		set := pb.BoundSet{Bounds: make([]pb.Bound, len(row))}
		for j, b := range row {
			set.Bounds[j] = pb.FromBound(b)
		}

		out.BoundSets[i] = set
	}

	stats.Log("EvaluateProduct", len(props)*len(interps))

	return out, nil
}

// EvaluatePairStreamed evaluates a lazy sequence of pairs, emitting one
// bound per inbound pair in order. A validation error on inbound element k
// is sent as element k's BoundResult.Error and the stream continues. A
// RecvMsg error (end of stream or a message that fails to decode) ends the
// inbound side: no result is emitted for that element and no further
// elements are read.
func (EvaluationServer) EvaluatePairStreamed(stream grpc.ServerStream) error {
	ctx := stream.Context()

	in := make(chan batch.PairInput)

	go func() {
		defer close(in)

		for {
			var msg pb.Pair
			if err := stream.RecvMsg(&msg); err != nil {
				return
			}

			p, perr := msg.ToPair()

			select {
			case in <- batch.PairInput{Pair: p, Err: perr}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for result := range batch.EvaluatePairStream(ctx, in) {
		msg := pb.BoundResult{}

		if result.Err != nil {
			msg.Error = result.Err.Error()
		} else {
			b := pb.FromBound(result.Bound)
			msg.Bound = &b
		}

		if err := stream.SendMsg(&msg); err != nil {
			return fmt.Errorf("send result: %w", err)
		}
	}

	return nil
}
