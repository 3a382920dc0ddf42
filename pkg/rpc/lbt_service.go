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

//go:generate go run ./pb/internal/generator

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ourstudio-se/puan-eval-go/pkg/batch"
	"github.com/ourstudio-se/puan-eval-go/pkg/lbt"
	"github.com/ourstudio-se/puan-eval-go/pkg/rpc/pb"
)

// LBTEvaluationServer implements puan_core.LbtEvaluationService: single-shot
// and streamed Linear Bounded Tree propagation, plus the schema-reflection
// stand-in described in pkg/rpc/pb.
type LBTEvaluationServer struct{}

// PropagateLbt propagates a single tree to fixpoint.
func (LBTEvaluationServer) PropagateLbt(_ context.Context, req *pb.LinearBoundedTree) (*pb.LinearBoundedTree, error) {
	return pb.FromLBT(lbt.Propagate(req.ToLBT())), nil
}

// PropagateLbtStreamed propagates a lazy sequence of trees, one propagated
// tree per inbound tree, in order (§5's streamed-LBT shape). The stream
// closes when the client half-closes or the context is cancelled, at which
// point the producer abandons draining the inbound stream - never mid
// propagation, since a single tree's propagation is synchronous and total.
func (LBTEvaluationServer) PropagateLbtStreamed(stream grpc.ServerStream) error {
	ctx := stream.Context()

	in := make(chan lbt.LBT)

	go func() {
		defer close(in)

		for {
			var msg pb.LinearBoundedTree
			if err := stream.RecvMsg(&msg); err != nil {
				return
			}

			select {
			case in <- msg.ToLBT():
			case <-ctx.Done():
				return
			}
		}
	}()

	for out := range batch.PropagateLBTStream(ctx, in) {
		if err := stream.SendMsg(pb.FromLBT(out)); err != nil {
			return err
		}
	}

	return nil
}

// DescribeSchemas reports the JSON wire shape of each evaluation and LBT
// message (BoundResult and its own request/response are not listed) - a
// stand-in for protobuf server reflection, which
// needs compiled FileDescriptorProtos this environment has no protoc to
// produce.
func (LBTEvaluationServer) DescribeSchemas(_ context.Context, _ *pb.DescribeSchemasRequest) (*pb.DescribeSchemasResponse, error) {
	return &pb.DescribeSchemasResponse{Messages: schemaTable}, nil
}
