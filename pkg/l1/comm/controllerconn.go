package comm

import (
	"context"
	"sync"
	"time"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
)

// ControllerConn provides base implementation for l1.ControllerConn using Pipe.
// Replies are matched to commands by sequence, events are posted to the loop.
type ControllerConn struct {
	Expiration time.Duration

	pipe   Pipe
	seq    uint32
	seqMap map[uint32]*commandFuture
	lock   sync.Mutex
}

// DefaultCommandExpiration is the default expiration expecting a result.
const DefaultCommandExpiration = 1 * time.Second

// Init initializes ControllerConn with defaults.
func (c *ControllerConn) Init(rw PacketReadWriter) {
	c.Expiration = DefaultCommandExpiration
	c.pipe.ReadWriter = rw
	c.pipe.Handler = msgs.HandleTypedMsgFunc(c.handleTypedMsg)
	c.seqMap = make(map[uint32]*commandFuture)
}

// DoCommand implements ControllerConn.
func (c *ControllerConn) DoCommand(msg fx.Message) l1.CommandFuture {
	return c.DoCommandWithin(msg, c.Expiration)
}

// DoCommandWithin implements ControllerConn.
func (c *ControllerConn) DoCommandWithin(msg fx.Message, timeout time.Duration) l1.CommandFuture {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.seq++
	if c.seq == 0 {
		c.seq++
	}
	f := &commandFuture{
		seq:      c.seq,
		expireAt: time.Now().Add(timeout),
		result:   make(chan l1.Result, 1),
	}
	if err := c.pipe.SendCommandMsg(msg, f.seq); err != nil {
		f.complete(l1.Result{Err: err})
		return f
	}
	c.seqMap[f.seq] = f
	return f
}

// AddToLoop implements LoopAdder.
func (c *ControllerConn) AddToLoop(l *fx.Loop) {
	l.Add(&c.pipe)
	l.AddController(fx.PrLvPostProc, fx.ControlFunc(c.purgeExpired))
}

// Close closes the underlying pipe.
func (c *ControllerConn) Close() error {
	return c.pipe.Close()
}

func (c *ControllerConn) handleTypedMsg(ctx context.Context, msg fx.Message, typed *msgs.Typed) error {
	if typed.IsEvent() {
		loopCtl := fx.LoopCtlFrom(ctx)
		loopCtl.PostMessage(msg)
		loopCtl.TriggerNext()
		return nil
	}
	c.lock.Lock()
	f := c.seqMap[typed.Sequence]
	delete(c.seqMap, typed.Sequence)
	c.lock.Unlock()
	if f == nil {
		return nil
	}
	result := l1.Result{Msg: msg}
	if cmdErr, ok := msg.(*msgs.CommandErr); ok {
		result.Err = cmdErr
	}
	f.complete(result)
	return nil
}

func (c *ControllerConn) purgeExpired(cc fx.ControlContext) error {
	now := cc.Time()
	c.lock.Lock()
	defer c.lock.Unlock()
	for seq, f := range c.seqMap {
		if f.expireAt.After(now) {
			continue
		}
		delete(c.seqMap, seq)
		f.complete(l1.Result{Err: context.DeadlineExceeded})
	}
	return nil
}

type commandFuture struct {
	seq      uint32
	expireAt time.Time
	result   chan l1.Result
}

func (c *commandFuture) complete(res l1.Result) {
	c.result <- res
	close(c.result)
}

func (c *commandFuture) ResultChan() <-chan l1.Result {
	return c.result
}
