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
package cmd

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ourstudio-se/puan-eval-go/pkg/rpc"
)

// serveCmd starts the gRPC server exposing the LBT evaluation and
// proposition evaluation services over the configured TCP endpoint.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the interval bound evaluation gRPC server.",
	Long:  "Start the gRPC server exposing LbtEvaluationService and EvaluationService over a TCP endpoint.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		addr := GetString(cmd, "addr")

		lis, err := net.Listen("tcp", addr)
		if err != nil {
			log.Fatalf("failed to bind %s: %v", addr, err)
		}

		server := rpc.NewServer()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

		go func() {
			<-shutdown
			log.Info("shutdown signal received, draining in-flight requests")
			server.GracefulStop()
		}()

		log.Infof("listening on %s", addr)

		if err := server.Serve(lis); err != nil {
			log.Fatalf("server exited: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "[::1]:10000", "TCP address to bind the gRPC server to")
	serveCmd.Flags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.AddCommand(serveCmd)
}
