package websocket

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm"
)

// Paths served by Server.
const (
	MetaPath = "/meta"
	L1Path   = "/l1"
)

// Server accepts L1 clients over websocket.
// Every connection is a Registrar, events are sent to all of them.
type Server struct {
	Addr string
	Info l1.ControllerInfo

	clients comm.RegistrarMux
	addr    chan net.Addr
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, info l1.ControllerInfo) *Server {
	return &Server{Addr: addr, Info: info, addr: make(chan net.Addr, 1)}
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	return s.clients.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(loop *fx.Loop) {
	loop.AddRunnable(s)
}

// ListenAddr waits for the server to listen and returns the address.
func (s *Server) ListenAddr(ctx context.Context) (net.Addr, error) {
	select {
	case addr := <-s.addr:
		s.addr <- addr
		return addr, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Handler creates the HTTP handler, commands are posted to the loop in ctx.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(MetaPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&s.Info)
	})
	mux.Handle(L1Path, websocket.Handler(func(conn *websocket.Conn) {
		reg := &comm.Registrar{}
		reg.Init(New(conn))
		s.clients.Add(reg)
		defer s.clients.Remove(reg)
		done := make(chan struct{})
		defer close(done)
		go func() {
			select {
			case <-ctx.Done():
				conn.Close()
			case <-done:
			}
		}()
		glog.V(2).Infof("client %s connected", conn.Request().RemoteAddr)
		err := reg.Run(ctx)
		glog.V(2).Infof("client %s disconnected: %v", conn.Request().RemoteAddr, err)
	}))
	return mux
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	if s.addr == nil {
		s.addr = make(chan net.Addr, 1)
	}
	s.addr <- ln.Addr()
	glog.Infof("serving L1 at %s", ln.Addr())
	server := &http.Server{Handler: s.Handler(ctx)}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()
	select {
	case <-ctx.Done():
		server.Close()
		<-errCh
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
