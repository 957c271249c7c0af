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

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver ("pgx" or "sqlite3")
//	-c/-config json file path with configs
//	-master-secret root secret for field key derivation
//	-kdf-time Argon2id time cost for field keys
//	-kdf-memory Argon2id memory cost in KiB for field keys
//	-crypto-workers max concurrent KDF or hashing calls
//	-max-attempts rate limit attempts per window
//	-api-max-requests API requests per caller per window
//	-window rate limit window (e.g., "1m")
//	-sweep-interval idle window eviction interval
//	-obfuscator-url remote obfuscation service base URL
//	-obfuscate obfuscate exported scripts
//	-token-sign-key bearer token signing key
//	-token-issuer bearer token issuer name
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-log-level log level
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var masterSecret string
	var kdfTime, kdfMemory uint
	var cryptoWorkers int64
	var maxAttempts, apiMaxRequests int
	var window, sweepInterval time.Duration
	var obfuscatorURL string
	var obfuscate bool
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&masterSecret, "master-secret", "", "Master secret for field key derivation")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id time cost for field keys")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory cost in KiB for field keys")
	fs.Int64Var(&cryptoWorkers, "crypto-workers", 0, "Max concurrent KDF or hashing calls")
	fs.IntVar(&maxAttempts, "max-attempts", 0, "Rate limit attempts per window")
	fs.IntVar(&apiMaxRequests, "api-max-requests", 0, "API requests per caller per window")
	fs.DurationVar(&window, "window", 0, "Rate limit window (e.g., 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Idle rate window eviction interval")
	fs.StringVar(&obfuscatorURL, "obfuscator-url", "", "Remote obfuscation service base URL")
	fs.BoolVar(&obfuscate, "obfuscate", false, "Obfuscate exported scripts")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Crypto: Crypto{
			MasterSecret: masterSecret,
			KDFTime:      uint32(kdfTime),
			KDFMemoryKiB: uint32(kdfMemory),
			WorkerLimit:  cryptoWorkers,
		},
		Guard: Guard{
			MaxAttempts:    maxAttempts,
			APIMaxRequests: apiMaxRequests,
			Window:         window,
			SweepInterval:  sweepInterval,
		},
		Export: Export{
			ObfuscatorURL: obfuscatorURL,
			Obfuscate:     obfuscate,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Auth: Auth{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
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
