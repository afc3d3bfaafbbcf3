package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/devconf/internal/config"
	handler "github.com/MKhiriev/devconf/internal/handler/http"
	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/internal/server"
	"github.com/MKhiriev/devconf/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	opts, err := config.GetOptions(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Without an admin API stdout carries only the resolved configuration,
	// so the banner and the log go to stderr.
	if opts.AdminAddress == "" {
		fmt.Fprint(os.Stderr, buildInfo)
		log := logger.NewConsoleLogger("devconf")

		store, _ := prepare(os.Args[0], opts, log)
		if err = printConfig(os.Stdout, store); err != nil {
			log.Fatal().Err(err).Msg("error printing configuration")
		}
		return
	}

	fmt.Print(buildInfo)
	log := logger.NewLogger("devconf")
	log.Debug().Any("options", opts).Msg("received options")

	store, _ := prepare(os.Args[0], opts, log)

	h := handler.NewHandler(store, buildInfo, log)
	srv, err := server.NewServer(h.Init(), opts.AdminAddress, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin server")
	}

	srv.RunServer()
}
