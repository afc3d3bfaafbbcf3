package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxConfigFileSize bounds every config read.
const maxConfigFileSize = 1 << 20

// mainFileConfig mirrors the keys recognised in the main config file.
// Pointer fields distinguish an absent key from an explicit zero value.
type mainFileConfig struct {
	ControllerIP              string `json:"controller_ip"`
	PLCIP                     string `json:"plc_ip"`
	TangoHost                 string `json:"tango_host"`
	SimMode                   *bool  `json:"sim_mode"`
	ProxyReconnectIntervalSec *int   `json:"proxy_reconnect_interval_sec"`
}

// mainLayer is the part of the main config file that overrides the current
// snapshot. Zero-valued endpoint fields are not set by the file.
type mainLayer struct {
	endpoints Endpoints
	simMode   *bool
}

func parseMainFile(path string) (*mainLayer, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	var raw mainFileConfig
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrConfigParse, path, err)
	}

	return &mainLayer{
		endpoints: Endpoints{
			ControllerIP:              strings.TrimSpace(raw.ControllerIP),
			PLCIP:                     strings.TrimSpace(raw.PLCIP),
			TangoHost:                 strings.TrimSpace(raw.TangoHost),
			ProxyReconnectIntervalSec: normalizeInterval(raw.ProxyReconnectIntervalSec),
		},
		simMode: raw.SimMode,
	}, nil
}

// readConfigFile reads at most maxConfigFileSize bytes from path and
// classifies failures as ErrConfigNotFound or ErrConfigParse.
func readConfigFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: opening %s: %w", ErrConfigParse, path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxConfigFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrConfigParse, path, err)
	}
	if len(data) > maxConfigFileSize {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrConfigParse, path, maxConfigFileSize)
	}

	return data, nil
}
