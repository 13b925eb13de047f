// Package serial opens the serial link to the motion controller.
package serial

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"
	tarm "github.com/tarm/serial"

	"github.com/robotalks/motion.go/pkg/l0/comm"
)

// Config defines the serial port options.
type Config struct {
	Name        string
	Baud        int
	ReadTimeout time.Duration
}

var defaultConfig = Config{
	Name:        "/dev/ttyUSB0",
	Baud:        115200,
	ReadTimeout: comm.DefaultTimeout,
}

func init() {
	if val := os.Getenv("MC_SERIAL_PORT"); val != "" {
		defaultConfig.Name = val
	}
	if val := os.Getenv("MC_SERIAL_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		}
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.Name, "port", defaultConfig.Name, "Serial port of the motion controller")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate")
	flag.DurationVar(&defaultConfig.ReadTimeout, "read-timeout", defaultConfig.ReadTimeout, "Serial read timeout")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Validate checks the config.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("serial port name is required")
	}
	if c.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Baud)
	}
	return nil
}

// Open opens the port.
func (c *Config) Open() (comm.Port, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	port, err := tarm.OpenPort(c.serialConfig())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Name, err)
	}
	glog.V(2).Infof("serial %s opened at %d baud", c.Name, c.Baud)
	return port, nil
}

func (c *Config) serialConfig() *tarm.Config {
	return &tarm.Config{
		Name:        c.Name,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeout,
		Size:        8,
		Parity:      tarm.ParityNone,
		StopBits:    tarm.Stop1,
	}
}

// Open opens the port with default config.
func Open() (comm.Port, error) {
	return Default().Open()
}
