// Copyright (c) nano Authors. All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nubificus/vaccel-rpc-go/agentserver"
	"github.com/nubificus/vaccel-rpc-go/internal/config"
	"github.com/nubificus/vaccel-rpc-go/internal/vlog"
	"github.com/nubificus/vaccel-rpc-go/nativeruntime"
)

func main() {
	var (
		address      string
		vaccelConfig string
	)

	root := &cobra.Command{
		Use:   "vaccel-rpc-agent",
		Short: "out-of-process agent for the vaccel RPC bridge",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Parse(vaccelConfig)
			if err != nil {
				return err
			}

			logger, err := vlog.New(vlog.Config{Level: cfg.ZapLevel(), Format: "console", File: cfg.LogFile})
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			vlog.SetDefault(logger)
			defer vlog.Sync()

			srv, err := agentserver.New(agentserver.Options{
				Address: address,
				Runtime: nativeruntime.Unimplemented{},
			})
			if err != nil {
				return fmt.Errorf("construct agent: %w", err)
			}
			if err := srv.Init(); err != nil {
				return fmt.Errorf("init agent: %w", err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Run(ctx)
			}()

			select {
			case <-ctx.Done():
				vlog.Default().Info("signal received, stopping agent")
				srv.Stop()
				srv.Shutdown()
				return nil
			case err := <-errCh:
				srv.Shutdown()
				return err
			}
		},
	}

	root.Flags().StringVarP(&address, "address", "a", "tcp://127.0.0.1:65500", "address to listen on (tcp://, unix://, vsock://)")
	root.Flags().StringVar(&vaccelConfig, "vaccel-config", "", "comma-separated key=value runtime config (plugins, log_level, log_file, profiling_enabled, version_ignore)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
