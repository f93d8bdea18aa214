package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-mode deployment mode: sandbox or production
//	-demo force demo mode (fixed sample quotes, no carrier calls)
//	-ups-client-id / -ups-client-secret / -ups-account UPS credentials
//	-fedex-client-id / -fedex-client-secret / -fedex-account FedEx credentials
//	-adapter-timeout outbound carrier request timeout (e.g., "30s", "1m")
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var mode string
	var demo bool
	var upsClientID, upsClientSecret, upsAccount string
	var fedexClientID, fedexClientSecret, fedexAccount string
	var adapterTimeout time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&mode, "mode", "", "Deployment mode: sandbox or production")
	flag.BoolVar(&demo, "demo", false, "Force demo mode")
	flag.StringVar(&upsClientID, "ups-client-id", "", "UPS OAuth client ID")
	flag.StringVar(&upsClientSecret, "ups-client-secret", "", "UPS OAuth client secret")
	flag.StringVar(&upsAccount, "ups-account", "", "UPS account number")
	flag.StringVar(&fedexClientID, "fedex-client-id", "", "FedEx OAuth client ID")
	flag.StringVar(&fedexClientSecret, "fedex-client-secret", "", "FedEx OAuth client secret")
	flag.StringVar(&fedexAccount, "fedex-account", "", "FedEx account number")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound carrier request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Mode: mode,
			Demo: demo,
		},
		Carriers: Carriers{
			UPS: CarrierCredentials{
				ClientID:      upsClientID,
				ClientSecret:  upsClientSecret,
				AccountNumber: upsAccount,
			},
			FedEx: CarrierCredentials{
				ClientID:      fedexClientID,
				ClientSecret:  fedexClientSecret,
				AccountNumber: fedexAccount,
			},
		},
		Adapter: Adapter{
			RequestTimeout: adapterTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
