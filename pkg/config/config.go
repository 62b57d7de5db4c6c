// Package config loads the hrml.yaml project configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file name looked up in the project root.
const DefaultFile = "hrml.yaml"

// Config is the project configuration. Zero fields fall back to the
// defaults from Default, so a partial file is fine.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Paths  PathsConfig  `yaml:"paths"`
	Site   SiteConfig   `yaml:"site"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type PathsConfig struct {
	Templates string `yaml:"templates"`
	Static    string `yaml:"static"`
	Store     string `yaml:"store"`
}

type SiteConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Favicon     string `yaml:"favicon"`
}

// Default returns the configuration used when no file (or a partial file)
// is present.
func Default() Config {
	return Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		Paths:  PathsConfig{Templates: "templates", Static: "static", Store: "hrml.db"},
		Site:   SiteConfig{Name: "HRML App"},
	}
}

// Load reads a YAML config file, filling unset fields from Default. A
// missing file yields the defaults; a malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Paths.Templates == "" {
		c.Paths.Templates = def.Paths.Templates
	}
	if c.Paths.Static == "" {
		c.Paths.Static = def.Paths.Static
	}
	if c.Paths.Store == "" {
		c.Paths.Store = def.Paths.Store
	}
	if c.Site.Name == "" {
		c.Site.Name = def.Site.Name
	}
}

// Addr returns the host:port the server binds.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
