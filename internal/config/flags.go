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
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "12h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-bcrypt-cost bcrypt work factor for password hashing
//	-fuzzy-threshold minimum similarity for fuzzy search results
//	-lastfm-api-key Last.fm API key
//	-lastfm-base-url Last.fm API base URL
//	-lastfm-timeout Last.fm request timeout
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var bcryptCost int
	var fuzzyThreshold float64
	var lastfmAPIKey string
	var lastfmBaseURL string
	var lastfmTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.Float64Var(&fuzzyThreshold, "fuzzy-threshold", 0, "Minimum fuzzy-search similarity in [0,1]")
	flag.StringVar(&lastfmAPIKey, "lastfm-api-key", "", "Last.fm API key")
	flag.StringVar(&lastfmBaseURL, "lastfm-base-url", "", "Last.fm API base URL")
	flag.DurationVar(&lastfmTimeout, "lastfm-timeout", 0, "Last.fm request timeout (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:   tokenSignKey,
			TokenIssuer:    tokenIssuer,
			TokenDuration:  tokenDuration,
			BcryptCost:     bcryptCost,
			FuzzyThreshold: fuzzyThreshold,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Lastfm: Lastfm{
			APIKey:  lastfmAPIKey,
			BaseURL: lastfmBaseURL,
			Timeout: lastfmTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string so that merge
// sources with a real address take precedence.
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

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
