package config

import (
	"errors"
	"flag"
	"net"
	"os"
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

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-n node URL of the JSON-RPC provider
//	-k node provider API key
//	-account wallet address to select on connect
//	-name DApp name
//	-c/-config json file path with configs
//	-request-timeout node request timeout (e.g., "15s")
//	-server-timeout HTTP server timeout (e.g., "30s")
//	-refresh balance refresh interval (e.g., "1m"), 0 disables it
func ParseFlags() (*StructuredConfig, error) {
	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	return parseFlags(fs, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var nodeURL string
	var apiKey string
	var account string
	var appName string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var serverTimeout time.Duration
	var refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&nodeURL, "n", "", "JSON-RPC node URL")
	fs.StringVar(&apiKey, "k", "", "Node provider API key")
	fs.StringVar(&account, "account", "", "Wallet address to select on connect")
	fs.StringVar(&appName, "name", "", "DApp name")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Node request timeout (e.g., 15s)")
	fs.DurationVar(&serverTimeout, "server-timeout", 0, "HTTP server timeout (e.g., 30s)")
	fs.DurationVar(&refreshInterval, "refresh", 0, "Balance refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Name:   appName,
			APIKey: apiKey,
		},
		Adapter: Adapter{
			NodeURL:        nodeURL,
			Account:        account,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverTimeout,
		},
		Workers: Workers{
			BalanceRefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
