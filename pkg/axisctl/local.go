package axisctl

import (
	"context"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm"
	"github.com/robotalks/motion.go/pkg/l1/comm/stream"
)

// Local implements l1.Connector by serving a Controller in process.
// Each connection runs its own loop until the connect context is done.
type Local struct {
	Info       l1.ControllerInfo
	Controller *Controller
}

// NewLocal creates a Local connector.
func NewLocal(info l1.ControllerInfo, ctl *Controller) *Local {
	return &Local{Info: info, Controller: ctl}
}

// Discover implements Connector.
func (l *Local) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	return []l1.ControllerInfo{l.Info}, nil
}

// Connect implements Connector.
func (l *Local) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	server, client := stream.Pair()
	reg := &comm.Registrar{}
	reg.Init(server)
	l.Controller.Registrar = reg
	loop := fx.NewLoop().Add(reg, l.Controller, &comm.UnsupportedCommands{})
	go loop.Run(ctx)
	go func() {
		<-ctx.Done()
		reg.Close()
	}()
	conn := &LocalConn{}
	conn.Init(client)
	return conn, nil
}

// LocalConn is the client side of a Local connection.
type LocalConn struct {
	comm.ControllerConn
}
