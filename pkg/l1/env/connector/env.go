package connector

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/motion.go/pkg/l1/comm/websocket"
)

// Config provides common options to setup Connectors.
type Config struct {
	Ref l1.ControllerRef

	// RegistryURL specifies where controllers are registered.
	// e.g. mqtt://host:port/topic-prefix or ws://host:port
	RegistryURL string

	// Connector overrides RegistryURL, e.g. with an in-process controller.
	Connector l1.Connector
}

var defaultConfig = Config{
	RegistryURL: "mqtt://localhost:1883/motion/",
}

func init() {
	if val := os.Getenv("MC_TYPE"); val != "" {
		defaultConfig.Ref.Type = val
	}
	if val := os.Getenv("MC_ID"); val != "" {
		defaultConfig.Ref.ID = val
	}
	if val := os.Getenv("MC_REGISTRY_URL"); val != "" {
		defaultConfig.RegistryURL = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Ref.Type, "controller-type", defaultConfig.Ref.Type, "Controller type to connect.")
	flag.StringVar(&defaultConfig.Ref.ID, "controller-id", defaultConfig.Ref.ID, "Controller ID to connect.")
	flag.StringVar(&defaultConfig.RegistryURL, "controller", defaultConfig.RegistryURL, "Controller registry URL (mqtt:// or ws://).")
}

// Default gets the default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// NewConnector creates a Connector using current config.
func (c *Config) NewConnector() (l1.Connector, error) {
	if c.Connector != nil {
		return c.Connector, nil
	}
	parsedURL, err := url.Parse(c.RegistryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registry URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "mqtt", "tcp", "ssl":
		return mqtt.NewConnector(c.RegistryURL)
	case "ws", "wss":
		return websocket.NewConnector(c.RegistryURL)
	default:
		return nil, fmt.Errorf("unknown registry URL scheme: %q", parsedURL.Scheme)
	}
}

// MustNewConnector creates a Connector and fails on error.
func (c *Config) MustNewConnector() l1.Connector {
	conn, err := c.NewConnector()
	if err != nil {
		log.Fatalln(err)
	}
	return conn
}

// Connect directly connects to a controller. When Ref is incomplete
// and exactly one controller is discovered, that one is used.
func (c *Config) Connect(ctx context.Context) (l1.ControllerConn, l1.ControllerRef, error) {
	connector, err := c.NewConnector()
	if err != nil {
		return nil, c.Ref, err
	}
	ref := c.Ref
	if !ref.IsValid() {
		infos, err := connector.Discover(ctx)
		if err != nil {
			return nil, ref, err
		}
		if len(infos) != 1 {
			return nil, ref, fmt.Errorf("controller type and id must be specified, %d discovered", len(infos))
		}
		ref = infos[0].Ref
	}
	conn, err := connector.Connect(ctx, ref)
	return conn, ref, err
}
