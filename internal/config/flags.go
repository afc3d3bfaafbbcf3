package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// FlagValues receives the option flags registered by [RegisterFlags].
type FlagValues struct {
	configPath   string
	runtimePath  string
	orbEndpoint  string
	adminAddress NetAddress
}

// RegisterFlags binds the option flags to fs.
//
// Flags:
//
//	-c/-config       main JSON config file path
//	-runtime-config  runtime override file path
//	-orb-endpoint    ORB endpoint value, e.g. giop:tcp::
//	-a               admin API address in format [host]:[port]
//
// In a devconf process these flags share argv with the device-control
// middleware. [GetOptions] consumes only the flags above, wherever they
// appear, and hands every other argument (instance name, -v4, -ORB...
// options, anything after "--") to the middleware in its original order.
func RegisterFlags(fs *flag.FlagSet) *FlagValues {
	v := new(FlagValues)

	fs.StringVar(&v.configPath, "c", "", "Main JSON config file path")
	fs.StringVar(&v.configPath, "config", "", "Main JSON config file path (alias)")
	fs.StringVar(&v.runtimePath, "runtime-config", "", "Runtime override file path")
	fs.StringVar(&v.orbEndpoint, "orb-endpoint", "", "ORB endpoint value")
	fs.Var(&v.adminAddress, "a", "Admin API address host:port")

	return v
}

// Options converts parsed flag values into an option layer.
func (v *FlagValues) Options() *Options {
	return &Options{
		ConfigPath:   v.configPath,
		RuntimePath:  v.runtimePath,
		ORBEndpoint:  v.orbEndpoint,
		AdminAddress: v.adminAddress.String(),
	}
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when neither part is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// splitArgs separates the flags registered on fs (with their values) from
// the arguments meant for the middleware. A lone "--" ends flag scanning and
// is dropped.
func splitArgs(fs *flag.FlagSet, args []string) (own, passthrough []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			passthrough = append(passthrough, args[i+1:]...)
			break
		}

		f := lookupFlag(fs, arg)
		if f == nil {
			passthrough = append(passthrough, arg)
			continue
		}

		own = append(own, arg)
		if strings.Contains(arg, "=") || isBoolFlag(f) || i+1 == len(args) {
			continue
		}
		i++
		own = append(own, args[i])
	}
	return own, passthrough
}

// lookupFlag returns the flag named by arg ("-name", "--name" or either
// with "=value"), or nil when arg is not a flag registered on fs.
func lookupFlag(fs *flag.FlagSet, arg string) *flag.Flag {
	if len(arg) < 2 || arg[0] != '-' {
		return nil
	}
	name := strings.TrimPrefix(arg[1:], "-")
	name, _, _ = strings.Cut(name, "=")
	if name == "" {
		return nil
	}
	return fs.Lookup(name)
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
