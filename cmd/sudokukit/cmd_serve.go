package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokukit/internal/adapters/http"
	"svw.info/sudokukit/internal/generator"
	"svw.info/sudokukit/internal/hint"
	"svw.info/sudokukit/internal/infrastructure/storage"
	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/usecase"
	"svw.info/sudokukit/internal/validator"
)

var (
	serveAddr   string
	serveData   string
	serveStore  string
	serveSolver string
)

var commandServe = &cobra.Command{
	Use:   "serve",
	Short: "Serve the engine over a JSON REST API",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(cmd); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	commandServe.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	commandServe.Flags().StringVar(&serveData, "data", "./data", "data directory")
	commandServe.Flags().StringVar(&serveStore, "store", "fs", "puzzle store: fs|bolt")
	commandServe.Flags().StringVar(&serveSolver, "solver", "backtrack", "backtrack|dlx")
	mainCommand.AddCommand(commandServe)
}

// Flags win over environment; .env fills in whatever was left at its default.
func applyEnv(cmd *cobra.Command) {
	_ = godotenv.Load()
	set := func(flag, env string, target *string) {
		if cmd.Flags().Changed(flag) {
			return
		}
		if v := os.Getenv(env); v != "" {
			*target = v
		}
	}
	set("addr", "SUDOKUKIT_ADDR", &serveAddr)
	set("data", "SUDOKUKIT_DATA", &serveData)
	set("store", "SUDOKUKIT_STORE", &serveStore)
}

func runServe(cmd *cobra.Command) error {
	applyEnv(cmd)

	s, err := newSolver(serveSolver)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(serveData, 0o755); err != nil {
		return err
	}

	var store ports.Storage
	switch strings.ToLower(strings.TrimSpace(serveStore)) {
	case "", "fs":
		store = storage.NewFS(serveData)
	case "bolt":
		bolt, err := storage.OpenBolt(filepath.Join(serveData, "sudokukit.db"))
		if err != nil {
			return err
		}
		defer bolt.Close()
		store = bolt
	default:
		return &unknownStoreError{serveStore}
	}

	uc := usecase.NewService(s, generator.NewUniqueGenerator(s), validator.New(), hint.New(), store)
	server := httpadapter.NewServer(serveAddr, uc)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	logrus.WithFields(logrus.Fields{
		"addr":   serveAddr,
		"data":   serveData,
		"store":  serveStore,
		"solver": serveSolver,
	}).Info("listening")

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-osSignals:
		logrus.WithFields(logrus.Fields{"signal": sig.String()}).Info("shutting down")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

type unknownStoreError struct{ kind string }

func (e *unknownStoreError) Error() string {
	return "unknown store " + e.kind + " (want fs|bolt)"
}
