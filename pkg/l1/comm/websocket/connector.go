package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm"
)

// Connector implements l1.Connector for a single Server.
type Connector struct {
	URL *url.URL
}

// NewConnector creates a Connector from ws://host:port.
func NewConnector(serverURL string) (*Connector, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported websocket scheme %q", u.Scheme)
	}
	return &Connector{URL: u}, nil
}

func (c *Connector) endpoint(scheme, path string) string {
	u := *c.URL
	u.Path = path
	if scheme == "http" && u.Scheme == "wss" {
		scheme = "https"
	}
	if scheme != "http" && scheme != "https" {
		scheme = u.Scheme
	}
	u.Scheme = scheme
	return u.String()
}

// Discover implements Connector. The server hosts exactly one controller.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	req, err := http.NewRequest(http.MethodGet, c.endpoint("http", MetaPath), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discover: %s", resp.Status)
	}
	var info l1.ControllerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return []l1.ControllerInfo{info}, nil
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	conn, err := websocket.Dial(c.endpoint("ws", L1Path), "", c.endpoint("http", "/"))
	if err != nil {
		return nil, err
	}
	cc := &ControllerConn{Conn: conn}
	cc.Init(New(conn))
	return cc, nil
}

// ControllerConn implements ControllerConn over websocket.
type ControllerConn struct {
	comm.ControllerConn
	Conn *websocket.Conn
}
