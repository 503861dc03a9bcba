package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/gritframe/grit/config"
	"github.com/gritframe/grit/http"
	"github.com/gritframe/grit/json"
	"github.com/gritframe/grit/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}

	shutdownTelemetry, err := telemetry.Setup(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			log.Printf("telemetry shutdown: %v", err)
		}
	}()

	server := http.NewServer(cfg.Name)
	server.ReadBufferSize = cfg.ReadBufferSize

	server.OnConnect = func(id uuid.UUID) {
		server.Logger.Info("connection opened", "conn", id)
	}
	server.OnClose = func(id uuid.UUID) {
		server.Logger.Info("connection closed", "conn", id)
	}

	server.Router.GET("/", func(req *http.Request, res *http.Response) {
		res.WithHTML("<h1>grit</h1>")
	}, http.LogMiddleware(server.Logger))

	server.Router.GET("/schools/:id/classes", func(req *http.Request, res *http.Response) {
		payload := json.Object(map[string]json.Value{
			"school":  json.String(req.Params["id"]),
			"classes": json.Array(json.String("algebra"), json.String("chemistry")),
		})
		if err := res.WithJSON(payload); err != nil {
			res.WithStatus(http.StatusInternalServerError).WithText(err.Error())
		}
	})

	server.Router.POST("/echo", func(req *http.Request, res *http.Response) {
		value, err := json.Parse(req.Body)
		if err != nil {
			res.WithStatus(http.StatusBadRequest).WithText(err.Error())
			return
		}
		if err := res.WithJSON(value); err != nil {
			res.WithStatus(http.StatusInternalServerError).WithText(err.Error())
		}
	}, http.RecoverMiddleware(server.Logger), http.RateLimitMiddleware(rate.Limit(100), 20))

	serverErrCh := make(chan error, 1)

	go func() {
		log.Printf("Listening and serving on: %s", cfg.Addr)
		serverErrCh <- server.ListenAndServe(cfg.Addr)
	}()

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return server.Shutdown(context.Background())
}
