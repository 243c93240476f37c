package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-surveyslider/pkg/server"
	"github.com/goliatone/go-surveyslider/pkg/slider"
)

var (
	serveAddr    string
	serveResults string
)

// serveCmd hosts a directory of definitions over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a directory of trial definitions over HTTP",
	Long: `Loads every .json/.yaml/.yml definition under dir and serves them:

  GET  /surveys                   list survey names
  POST /surveys/{name}/trials     start a trial (redirects to it)
  GET  /trials/{id}               trial page
  POST /trials/{id}/submit        submit; responds with the result record
  GET  /assets/...                runtime script and stylesheet`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveResults, "results", "", "Append completed trials to this JSON lines file")
}

func runServe(cmd *cobra.Command, args []string) error {
	catalog, err := slider.LoadFS(os.DirFS(args[0]))
	if err != nil {
		return err
	}
	if catalog.Len() == 0 {
		return fmt.Errorf("no trial definitions found in %s", args[0])
	}

	options := []server.Option{
		server.WithLogger(logger),
		server.WithShuffler(shuffler()),
	}
	if serveResults != "" {
		sink, err := server.NewJSONLinesSink(serveResults)
		if err != nil {
			return err
		}
		defer sink.Close()
		options = append(options, server.WithSink(sink))
	}

	srv, err := server.New(catalog, options...)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              serveAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", serveAddr), zap.Strings("surveys", catalog.Names()))
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server closed")
	return nil
}
