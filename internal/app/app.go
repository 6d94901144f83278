package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"netsum/internal/app/server"
	"netsum/internal/config"
	"netsum/internal/geolite"
	"netsum/internal/ipv4"
	"netsum/internal/routeset"
)

const shutdownTimeout = 10 * time.Second

// Run wires the service together: configuration, then either one-shot
// file mode or the HTTP API.
func Run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found. Falling back to system environment variables.")
	}

	inputFlag := flag.String("input", "", "Summarize routes from a file and exit")
	portFlag := flag.Int("port", 0, "Port for the API server")
	productionFlag := flag.Bool("production", false, "Run in production mode")
	flag.Parse()

	config.SetProductionMode(*productionFlag)
	if !config.InProductionMode {
		log.SetLevel(log.DebugLevel)
	}

	config.Load()

	if *inputFlag != "" {
		return runFile(*inputFlag)
	}

	// config.Load already folded the PORT env override in; an explicit
	// flag wins over both.
	port := config.GetConfig().Server.Port
	if *portFlag != 0 {
		port = *portFlag
	}

	return serve(port)
}

// runFile is the one-shot harness: echo each normalized pair, then the
// summary, aborting on the first malformed line.
func runFile(path string) error {
	return summarizeFile(path, os.Stdout)
}

func summarizeFile(path string, w io.Writer) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	routes, err := routeset.Parse(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	summary, err := ipv4.Summarize(routes)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, route := range routes {
		fmt.Fprintln(w, route)
	}
	fmt.Fprintf(w, "summary: %s\n", summary)
	return nil
}

func serve(port int) error {
	if err := geolite.Open(config.GetConfig().GeoLite.DBPath); err != nil {
		return err
	}
	defer geolite.Close()

	srv, err := server.New(port)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := srv.Serve(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
