package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/rs/zerolog"

	"github.com/hostelworks/hostel-dashboard/hostelapi"
	"github.com/hostelworks/hostel-dashboard/internal/config"
	"github.com/hostelworks/hostel-dashboard/refresh"
	"github.com/hostelworks/hostel-dashboard/server"
	"github.com/hostelworks/hostel-dashboard/session"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running server: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Server stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	c, err := config.New()
	if err != nil {
		return fmt.Errorf("config.New %w", err)
	}
	displayAppname(c.GetAppName())

	repo, err := sessionRepo(c)
	if err != nil {
		return fmt.Errorf("sessionRepo %w", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	store := session.NewStore(repo, logger)
	api := hostelapi.NewClient(c.GetBackendBaseURL(), c.GetRequestTimeout(), logger)
	bus := refresh.NewBus()

	srv, err := server.New(c, store, api, bus)
	if err != nil {
		return fmt.Errorf("server.New %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	srv.Start(ctx)
	defer srv.Stop()

	httpServer := &http.Server{Addr: c.GetPort(), Handler: srv}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

// sessionRepo selects the session backend: redis when an address is
// configured, otherwise one file per session on local disk.
func sessionRepo(c config.Config) (session.Repo, error) {
	if addr := c.GetRedisAddr(); addr != "" {
		return session.NewRedisRepo(addr, c.GetSessionTTL()), nil
	}
	return session.NewFileRepo(c.GetSessionDir())
}

func listenAndServe(server *http.Server) error {
	log.Printf("Server listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
