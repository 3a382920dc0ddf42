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

// This file hand-writes the grpc.ServiceDesc values that protoc-gen-go-grpc
// would otherwise generate from puan_core.proto/puan_eval.proto. There is no
// protoc in this environment, so the method tables below are maintained by
// hand against the RPC names fixed in SPEC_FULL.md §4/§5; grpc.Server
// dispatches on these exactly as it would on generated code.
package rpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ourstudio-se/puan-eval-go/pkg/rpc/pb"
)

// lbtEvaluationServiceDesc describes puan_core.LbtEvaluationService.
var lbtEvaluationServiceDesc = grpc.ServiceDesc{
	ServiceName: "puan_core.LbtEvaluationService",
	HandlerType: (*LBTEvaluationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PropagateLbt",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(pb.LinearBoundedTree)
				if err := dec(req); err != nil {
					return nil, err
				}

				if interceptor == nil {
					return srv.(LBTEvaluationServer).PropagateLbt(ctx, req)
				}

				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/puan_core.LbtEvaluationService/PropagateLbt"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(LBTEvaluationServer).PropagateLbt(ctx, req.(*pb.LinearBoundedTree))
				}

				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "DescribeSchemas",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(pb.DescribeSchemasRequest)
				if err := dec(req); err != nil {
					return nil, err
				}

				if interceptor == nil {
					return srv.(LBTEvaluationServer).DescribeSchemas(ctx, req)
				}

				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/puan_core.LbtEvaluationService/DescribeSchemas"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(LBTEvaluationServer).DescribeSchemas(ctx, req.(*pb.DescribeSchemasRequest))
				}

				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "PropagateLbtStreamed",
			Handler: func(srv any, stream grpc.ServerStream) error {
				return srv.(LBTEvaluationServer).PropagateLbtStreamed(stream)
			},
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "puan_core.proto",
}

// evaluationServiceDesc describes puan_eval.EvaluationService.
var evaluationServiceDesc = grpc.ServiceDesc{
	ServiceName: "puan_eval.EvaluationService",
	HandlerType: (*EvaluationServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EvaluatePairs",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(pb.PairSet)
				if err := dec(req); err != nil {
					return nil, err
				}

				if interceptor == nil {
					return srv.(EvaluationServer).EvaluatePairs(ctx, req)
				}

				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/puan_eval.EvaluationService/EvaluatePairs"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(EvaluationServer).EvaluatePairs(ctx, req.(*pb.PairSet))
				}

				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "EvaluateProduct",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := new(pb.PropositionInterpretationSet)
				if err := dec(req); err != nil {
					return nil, err
				}

				if interceptor == nil {
					return srv.(EvaluationServer).EvaluateProduct(ctx, req)
				}

				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/puan_eval.EvaluationService/EvaluateProduct"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(EvaluationServer).EvaluateProduct(ctx, req.(*pb.PropositionInterpretationSet))
				}

				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName: "EvaluatePairStreamed",
			Handler: func(srv any, stream grpc.ServerStream) error {
				return srv.(EvaluationServer).EvaluatePairStreamed(stream)
			},
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "puan_eval.proto",
}

// RegisterLBTEvaluationServer registers srv as the LbtEvaluationService
// implementation on s.
func RegisterLBTEvaluationServer(s *grpc.Server, srv LBTEvaluationServer) {
	s.RegisterService(&lbtEvaluationServiceDesc, srv)
}

// RegisterEvaluationServer registers srv as the EvaluationService
// implementation on s.
func RegisterEvaluationServer(s *grpc.Server, srv EvaluationServer) {
	s.RegisterService(&evaluationServiceDesc, srv)
}
