package serial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	tarm "github.com/tarm/serial"

	"github.com/robotalks/motion.go/pkg/l0/comm"
)

var _ comm.Port = (*tarm.Port)(nil)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name string
		conf Config
		ok   bool
	}{
		{"valid", Config{Name: "/dev/ttyUSB0", Baud: 115200}, true},
		{"no name", Config{Baud: 115200}, false},
		{"bad baud", Config{Name: "COM4"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.conf.Validate()
			if c.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestSerialConfig(t *testing.T) {
	conf := &Config{Name: "COM4", Baud: 9600, ReadTimeout: time.Second}
	sc := conf.serialConfig()
	require.Equal(t, "COM4", sc.Name)
	require.Equal(t, 9600, sc.Baud)
	require.Equal(t, time.Second, sc.ReadTimeout)
	require.Equal(t, byte(8), sc.Size)
}

func TestNewConfigCopiesDefaults(t *testing.T) {
	conf := NewConfig()
	conf.Baud = 1
	require.NotEqual(t, 1, Default().Baud)
	require.Equal(t, comm.DefaultTimeout, Default().ReadTimeout)
}

func TestOpenInvalid(t *testing.T) {
	_, err := (&Config{}).Open()
	require.Error(t, err)
}
