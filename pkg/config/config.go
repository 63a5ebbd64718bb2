// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v2"

	"github.com/TFMV/CredCoreMatch/internal/matcher"
	"github.com/TFMV/CredCoreMatch/pkg/utils"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"

	defaultTable = "ReferenceAddress"
)

type DBCreds struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
}

type MatcherConfig struct {
	Threshold *float64 `yaml:"threshold"`
	TopN      int      `yaml:"top_n"`
	Workers   int      `yaml:"workers"`
	StopWords []string `yaml:"stop_words"`
}

type ReferencesConfig struct {
	Source string `yaml:"source"`
	File   string `yaml:"file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Matcher    MatcherConfig    `yaml:"matcher"`
	References ReferencesConfig `yaml:"references"`
	DBCreds    DBCreds          `yaml:"db_creds"`
	Log        LogConfig        `yaml:"log"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads the configuration from a YAML file
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read config file: %w", err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Matcher.Threshold == nil {
		threshold := matcher.DefaultThreshold
		c.Matcher.Threshold = &threshold
	}
	if c.Matcher.TopN == 0 {
		c.Matcher.TopN = matcher.DefaultTopN
	}
	if c.Matcher.Workers == 0 {
		c.Matcher.Workers = runtime.NumCPU()
	}
	if c.References.Source == "" {
		c.References.Source = SourceFile
	}
	if c.DBCreds.Port == "" {
		c.DBCreds.Port = "5432"
	}
	if c.DBCreds.Table == "" {
		c.DBCreds.Table = defaultTable
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Validate checks the fields the matcher options do not cover
func (c *Config) Validate() error {
	switch c.References.Source {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("unknown reference source %q", c.References.Source)
	}
	if _, err := utils.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// MatcherOptions converts the matcher section into matcher.Options.
// A missing stop_words key keeps the default list.
func (c *Config) MatcherOptions() matcher.Options {
	opts := matcher.DefaultOptions()
	if c.Matcher.Threshold != nil {
		opts.Threshold = *c.Matcher.Threshold
	}
	if c.Matcher.TopN != 0 {
		opts.TopN = c.Matcher.TopN
	}
	if c.Matcher.Workers != 0 {
		opts.Workers = c.Matcher.Workers
	}
	if c.Matcher.StopWords != nil {
		opts.StopWords = c.Matcher.StopWords
	}
	return opts
}
