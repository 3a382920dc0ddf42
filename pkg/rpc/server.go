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

// Package rpc wires the pure pkg/batch combinators onto a gRPC transport:
// puan_core.LbtEvaluationService and puan_eval.EvaluationService (§6).
package rpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

// NewServer builds a *grpc.Server with both services registered and the
// JSON codec forced for every call, regardless of what content-subtype a
// client negotiates - there is no generated protobuf code for these
// messages in this environment, so every client of this server must speak
// the JSON wire form.
func NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append(opts, grpc.ForceServerCodec(jsonCodec{}))

	s := grpc.NewServer(opts...)

	RegisterLBTEvaluationServer(s, LBTEvaluationServer{})
	RegisterEvaluationServer(s, EvaluationServer{})

	return s
}
