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

// Command generator renders pkg/rpc/schema_table.go from the message field
// list below, the same way field/internal/generator renders field element
// arithmetic from a field spec: a small Go-side spec, rendered through
// bavard/text-template rather than hand-maintained twice (once as Go
// structs, once as the DescribeSchemas response).
package main

import (
	"fmt"

	"github.com/consensys/bavard"
)

const copyrightHolder = "go-puaneval Contributors"

type messageSpec struct {
	Name   string
	Fields string
}

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "puan-eval-go")

	messages := []messageSpec{
		{Name: "Bound", Fields: `{"lower":"int64","upper":"int64"}`},
		{Name: "Primitive", Fields: `{"id":"string","default":"Bound?"}`},
		{Name: "Composite", Fields: `{"direction":"0|1","bias":"int64","variables":"[Variable]"}`},
		{Name: "Variable", Fields: `{"primitive":"Primitive?","composite":"Composite?"}`},
		{Name: "Fact", Fields: `{"id":"string","value":"int64"}`},
		{Name: "Interpretation", Fields: `{"facts":"[Fact]"}`},
		{Name: "CoefRelation", Fields: `{"id":"string","coefficient":"int64"}`},
		{Name: "BinaryInequalityConstraint", Fields: `{"relations":"[CoefRelation]"}`},
		{Name: "BicOrBound", Fields: `{"bic":"BinaryInequalityConstraint?","bound":"Bound?"}`},
		{Name: "LinearBoundedTree", Fields: `{"nodes":"map[string]BicOrBound"}`},
		{Name: "PropositionInterpretationPair", Fields: `{"proposition":"Composite?","interpretation":"Interpretation?"}`},
		{Name: "PairSet", Fields: `{"pairs":"[Pair]"}`},
		{Name: "PropositionInterpretationSet", Fields: `{"propositions":"[Composite]","interpretations":"[Interpretation]"}`},
		{Name: "BoundSet", Fields: `{"bounds":"[Bound]"}`},
		{Name: "BoundCollection", Fields: `{"bound_sets":"[BoundSet]"}`},
	}

	assertNoError(bgen.Generate(messageSpecs{Messages: messages}, "rpc", "templates",
		bavard.Entry{
			File:      "../../../schema_table.go",
			Templates: []string{"schema_table.go.tmpl"},
		},
	), "generating schema table")
}

type messageSpecs struct {
	Messages []messageSpec
}

func assertNoError(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf(format+": %s", append(args, err)...))
	}
}
