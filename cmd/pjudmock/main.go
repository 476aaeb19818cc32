// Standalone court e-filing simulator for local development. The main
// server talks to it exactly as it would to the real service.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/andeslegal/cobranza/pkg/pjudmock"
)

func main() {
	port := flag.Int("port", 8765, "Listen port for the simulator")
	flag.Parse()

	server := pjudmock.NewServer()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      server.Router(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	slog.Info("PJUD simulator listening",
		"addr", srv.Addr,
		"valid_rut", pjudmock.ValidRUT,
		"records", 20)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("Simulator server error", "error", err)
		os.Exit(1)
	}
}
