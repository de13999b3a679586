// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration.
type StructuredJSONConfig struct {
	App struct {
		SecretKey          string   `json:"secret_key"`
		Version            string   `json:"version"`
		SystemDomains      []string `json:"system_domains"`
		LogLevel           string   `json:"log_level"`
		PublicBaseURL      string   `json:"public_base_url"`
		SessionDuration    Duration `json:"session_duration"`
		ResetTokenDuration Duration `json:"reset_token_duration"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Backend struct {
		URL            string   `json:"url"`
		Token          string   `json:"token"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"directus,omitempty"`

	Mail struct {
		Server   string `json:"server"`
		Port     int    `json:"port"`
		Username string `json:"username"`
		Password string `json:"password"`
		UseSSL   *bool  `json:"use_ssl"`
		From     string `json:"from"`
	} `json:"mail,omitempty"`

	RateLimit struct {
		RedisAddress  string `json:"redis_address"`
		RedisPassword string `json:"redis_password"`
		RedisDB       int    `json:"redis_db"`
	} `json:"rate_limit,omitempty"`
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
			SecretKey:          jsonCfg.App.SecretKey,
			Version:            jsonCfg.App.Version,
			SystemDomains:      jsonCfg.App.SystemDomains,
			LogLevel:           jsonCfg.App.LogLevel,
			PublicBaseURL:      jsonCfg.App.PublicBaseURL,
			SessionDuration:    time.Duration(jsonCfg.App.SessionDuration),
			ResetTokenDuration: time.Duration(jsonCfg.App.ResetTokenDuration),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			Token:          jsonCfg.Backend.Token,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Mail: Mail{
			Server:   jsonCfg.Mail.Server,
			Port:     jsonCfg.Mail.Port,
			Username: jsonCfg.Mail.Username,
			Password: jsonCfg.Mail.Password,
			UseSSL:   jsonCfg.Mail.UseSSL,
			From:     jsonCfg.Mail.From,
		},
		RateLimit: RateLimit{
			RedisAddress:  jsonCfg.RateLimit.RedisAddress,
			RedisPassword: jsonCfg.RateLimit.RedisPassword,
			RedisDB:       jsonCfg.RateLimit.RedisDB,
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
