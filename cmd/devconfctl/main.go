// Command devconfctl inspects the configuration of a devconf deployment and
// toggles its simulation flag, either directly in the runtime override file
// or through the admin API of a running process.
//
// Usage:
//
//	devconfctl -show [-c path] [-remote host:port]
//	devconfctl -set-sim=true|false [-c path] [-remote host:port]
package main

import (
	"os"

	"github.com/MKhiriev/devconf/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("devconfctl")

	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("devconfctl failed")
	}
}
