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
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats snapshots elapsed time and memory allocation around a batch
// evaluation or propagation call. Unlike a schema compile, a single
// EvaluatePairs/EvaluateProduct/PropagateLbt call allocates at most a few
// KB, so this reports kilobytes and a per-item cost rather than the
// gigabyte-scale figures a trace-compiler pass would need.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.NumGC}
}

// Log logs the difference between the state now and as it was when the
// PerfStats object was created, against a label and the number of items
// the call processed (pairs evaluated, cells in a product, tree nodes
// propagated). Pass n <= 0 when there is no meaningful item count.
func (p *PerfStats) Log(prefix string, n int) {
	log.Debugf("%s took %s", prefix, p.string(n))
}

// string provides a string representation of the usage thus far.
func (p *PerfStats) string(n int) string {
	var m runtime.MemStats

	runtime.ReadMemStats(&m)
	allocKB := (m.TotalAlloc - p.startMem) / 1024
	gcs := m.NumGC - p.startGc
	exectime := time.Since(p.startTime).Seconds()

	if n <= 0 {
		return fmt.Sprintf("%0.4fs using %v KB (%v GC events)", exectime, allocKB, gcs)
	}

	return fmt.Sprintf("%0.4fs using %v KB (%v GC events), %d items (%0.2fus/item)",
		exectime, allocKB, gcs, n, exectime/float64(n)*1e6)
}
