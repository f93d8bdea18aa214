package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Mode    string `json:"mode"`
		Demo    bool   `json:"demo"`
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Carriers struct {
		UPS struct {
			ClientID      string `json:"client_id"`
			ClientSecret  string `json:"client_secret"`
			AccountNumber string `json:"account_number"`
		} `json:"ups,omitempty"`

		FedEx struct {
			ClientID      string `json:"client_id"`
			ClientSecret  string `json:"client_secret"`
			AccountNumber string `json:"account_number"`
		} `json:"fedex,omitempty"`
	} `json:"carriers,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
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
			Mode:    jsonCfg.App.Mode,
			Demo:    jsonCfg.App.Demo,
			Version: jsonCfg.App.Version,
		},
		Carriers: Carriers{
			UPS: CarrierCredentials{
				ClientID:      jsonCfg.Carriers.UPS.ClientID,
				ClientSecret:  jsonCfg.Carriers.UPS.ClientSecret,
				AccountNumber: jsonCfg.Carriers.UPS.AccountNumber,
			},
			FedEx: CarrierCredentials{
				ClientID:      jsonCfg.Carriers.FedEx.ClientID,
				ClientSecret:  jsonCfg.Carriers.FedEx.ClientSecret,
				AccountNumber: jsonCfg.Carriers.FedEx.AccountNumber,
			},
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
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
