// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const configEnv = "AVLSTEP_CONFIG"

type RunConfig struct {
	Sequence []int `yaml:"sequence"`
	Preview  bool  `yaml:"preview"`
	Color    bool  `yaml:"color"`
}

type VerifyConfig struct {
	Count  int   `yaml:"count"`
	Seed   int64 `yaml:"seed"`
	MaxKey int   `yaml:"max_key"`
}

type Config struct {
	Run    RunConfig    `yaml:"run"`
	Verify VerifyConfig `yaml:"verify"`
}

func defaultConfig() Config {
	return Config{
		Run: RunConfig{
			Sequence: []int{10, 20, 30, 40, 50, 25},
			Preview:  false,
			Color:    true,
		},
		Verify: VerifyConfig{
			Count:  1000,
			Seed:   1,
			MaxKey: 1000000,
		},
	}
}

// getConfigPath honours AVLSTEP_CONFIG before falling back to ~/.avlstep.yaml.
func getConfigPath() (string, error) {
	if p := os.Getenv(configEnv); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avlstep.yaml"), nil
}

// LoadConfig never fails hard: a missing or broken file yields the defaults.
// Fields absent from the file keep their default values.
func LoadConfig() (*Config, error) {
	config := defaultConfig()

	configPath, err := getConfigPath()
	if err != nil {
		return &config, nil
	}

	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return &config, nil
	}
	if err != nil {
		log.Printf("failed to read %s: %v. Using default settings.", configPath, err)
		return &config, nil
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		log.Printf("failed to parse %s: %v. Using default settings.", configPath, err)
		fallback := defaultConfig()
		return &fallback, nil
	}
	if err := config.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration in %s", configPath)
	}
	return &config, nil
}

func (c *Config) validate() error {
	for _, k := range c.Run.Sequence {
		if k < 0 {
			return errors.Newf("run.sequence: negative key %d", k)
		}
	}
	return c.Verify.validate()
}

// validate runs again after command-line flags override the file values.
func (v VerifyConfig) validate() error {
	if v.Count < 0 {
		return errors.Newf("verify.count must not be negative, got %d", v.Count)
	}
	if v.MaxKey <= 0 {
		return errors.Newf("verify.max_key must be positive, got %d", v.MaxKey)
	}
	if v.Count > v.MaxKey {
		return errors.Newf("verify.count %d exceeds the %d keys below verify.max_key", v.Count, v.MaxKey)
	}
	return nil
}

func createDefaultConfigFile(configPath string) error {
	config := defaultConfig()
	data, err := yaml.Marshal(&config)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}
	return nil
}

func displaySettings(p *printer) error {
	configPath, err := getConfigPath()
	if err != nil {
		return errors.Wrap(err, "failed to get config path")
	}

	created := false
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := createDefaultConfigFile(configPath); err != nil {
			return err
		}
		created = true
	}

	config, err := LoadConfig()
	if err != nil {
		return err
	}

	p.heading("avlstep configuration")
	if created {
		p.linef("config file: %s (newly created)", configPath)
	} else {
		p.linef("config file: %s", configPath)
	}
	p.linef("")
	p.linef("run.sequence: %v", config.Run.Sequence)
	p.linef("run.preview:  %t", config.Run.Preview)
	p.linef("run.color:    %t", config.Run.Color)
	p.linef("verify.count:   %d", config.Verify.Count)
	p.linef("verify.seed:    %d", config.Verify.Seed)
	p.linef("verify.max_key: %d", config.Verify.MaxKey)
	p.linef("")
	p.linef("edit %s to change the defaults", configPath)
	return nil
}
