package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang/glog"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/comm"
)

// Registrar announces a controller on the retained meta topic and carries
// its commands and events. The will clears the meta when the connection
// drops, Run clears it on a clean shutdown.
type Registrar struct {
	Queue *Queue
	Info  l1.ControllerInfo
	// ClearTimeout bounds publishing the empty meta on shutdown.
	ClearTimeout time.Duration

	meta      []byte
	registrar comm.Registrar
}

// NewRegistrar creates a Registrar.
func NewRegistrar(brokerURL string, info l1.ControllerInfo) (*Registrar, error) {
	meta, err := json.Marshal(&info.Meta)
	if err != nil {
		return nil, fmt.Errorf("encode meta: %w", err)
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+metaTopic(info.Ref), nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("mc:" + info.Ref.Name())
	}
	r := &Registrar{
		Queue:        NewQueue(opts, topicPrefix),
		Info:         info,
		ClearTimeout: time.Second,
		meta:         meta,
	}
	r.Queue.OnConnect = r.announce
	r.registrar.Init(NewPacketReadWriter(r.Queue).ForController(info.Ref))
	return r, nil
}

func metaTopic(ref l1.ControllerRef) string {
	return ref.Name() + "/meta"
}

// SendEvent implements Registrar.
func (r *Registrar) SendEvent(ctx context.Context, msg fx.Message) error {
	return r.registrar.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (r *Registrar) AddToLoop(loop *fx.Loop) {
	loop.Add(&r.registrar)
	loop.AddRunnable(r)
}

// Run implements Runnable. Reconnects are left to the client.
func (r *Registrar) Run(ctx context.Context) error {
	if err := WaitToken(ctx, r.Queue.Connect()); err != nil {
		glog.Warningf("connect %s: %v, retrying in background", r.Info.Ref.Name(), err)
	}
	<-ctx.Done()
	token := r.Queue.PubWith(metaTopic(r.Info.Ref), nil, 1, true)
	if !token.WaitTimeout(r.ClearTimeout) {
		glog.Warningf("clear meta of %s timed out", r.Info.Ref.Name())
	}
	return r.Queue.Close()
}

func (r *Registrar) announce(q *Queue) {
	q.PubWith(metaTopic(r.Info.Ref), r.meta, 1, true)
}
