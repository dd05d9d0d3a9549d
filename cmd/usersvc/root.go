/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/suparena/userstore"
	"github.com/suparena/userstore/datastore/ddb"
	"github.com/suparena/userstore/internal/config"
	"github.com/suparena/userstore/internal/handler"
	"github.com/suparena/userstore/internal/logger"
	"github.com/suparena/userstore/internal/router"
	"github.com/suparena/userstore/internal/server"
	"github.com/suparena/userstore/models"
)

const startupPingTimeout = 5 * time.Second

func run(ctx context.Context, args []string, out io.Writer) error {
	cmd := newRootCommand(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCommand(out io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "usersvc",
		Short: "User records HTTP service",
		Long: "usersvc exposes create, read, update, delete and list operations\n" +
			"over a DynamoDB table keyed by emp_id.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	cmd.SetOut(out)

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file (default $"+config.FileEnvVar+")")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), userstore.Version)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), userstore.GetVersionInfo().String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "print only the version number")
	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for up to server.shutdown_timeout.
func serve(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging, cfg.Primary.Env)

	store, err := ddb.NewDynamodbDataStore[models.User](ctx, ddb.ClientOptions{
		Region:      cfg.Store.Region,
		AccessKey:   cfg.Store.AccessKey,
		SecretKey:   cfg.Store.SecretKey,
		Endpoint:    cfg.Store.Endpoint,
		MaxAttempts: cfg.Store.MaxAttempts,
	}, cfg.Store.TableName, ddb.WithConsistentRead(cfg.Store.ConsistentRead))
	if err != nil {
		return fmt.Errorf("setting up datastore: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	if err := store.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("table", store.TableName()).Msg("table not reachable at startup")
	}
	cancel()

	srv, err := server.New(cfg, &log, store)
	if err != nil {
		return err
	}
	srv.SetupHTTPServer(router.NewRouter(srv, handler.NewHandlers(srv)))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(srv.Start)

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
