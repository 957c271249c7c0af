package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Crypto struct {
		MasterSecret      string   `json:"master_secret"`
		KDFTime           uint32   `json:"kdf_time"`
		KDFMemoryKiB      uint32   `json:"kdf_memory_kib"`
		KDFThreads        uint8    `json:"kdf_threads"`
		PasswordTime      uint32   `json:"password_time"`
		PasswordMemoryKiB uint32   `json:"password_memory_kib"`
		WorkerLimit       int64    `json:"worker_limit"`
		KeyContexts       []string `json:"key_contexts"`
	} `json:"crypto,omitempty"`

	Guard struct {
		MaxAttempts    int      `json:"max_attempts"`
		APIMaxRequests int      `json:"api_max_requests"`
		Window         Duration `json:"window"`
		SweepInterval  Duration `json:"sweep_interval"`
	} `json:"guard,omitempty"`

	Export struct {
		ObfuscatorURL     string   `json:"obfuscator_url"`
		ObfuscatorTimeout Duration `json:"obfuscator_timeout"`
		Obfuscate         bool     `json:"obfuscate"`
	} `json:"export,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Auth struct {
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
	} `json:"auth,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Crypto: Crypto{
			MasterSecret:      jsonCfg.Crypto.MasterSecret,
			KDFTime:           jsonCfg.Crypto.KDFTime,
			KDFMemoryKiB:      jsonCfg.Crypto.KDFMemoryKiB,
			KDFThreads:        jsonCfg.Crypto.KDFThreads,
			PasswordTime:      jsonCfg.Crypto.PasswordTime,
			PasswordMemoryKiB: jsonCfg.Crypto.PasswordMemoryKiB,
			WorkerLimit:       jsonCfg.Crypto.WorkerLimit,
			KeyContexts:       jsonCfg.Crypto.KeyContexts,
		},
		Guard: Guard{
			MaxAttempts:    jsonCfg.Guard.MaxAttempts,
			APIMaxRequests: jsonCfg.Guard.APIMaxRequests,
			Window:         time.Duration(jsonCfg.Guard.Window),
			SweepInterval:  time.Duration(jsonCfg.Guard.SweepInterval),
		},
		Export: Export{
			ObfuscatorURL:     jsonCfg.Export.ObfuscatorURL,
			ObfuscatorTimeout: time.Duration(jsonCfg.Export.ObfuscatorTimeout),
			Obfuscate:         jsonCfg.Export.Obfuscate,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Auth: Auth{
			TokenSignKey: jsonCfg.Auth.TokenSignKey,
			TokenIssuer:  jsonCfg.Auth.TokenIssuer,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
