// Package sh is the interactive shell of mcctl. Command packages register
// their ishell commands with AddCmds in init.
package sh

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"reflect"
	"time"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1"
	env "github.com/robotalks/motion.go/pkg/l1/env/connector"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
)

// ErrNotConnected is reported by commands needing a controller.
var ErrNotConnected = errors.New("not connected")

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoConnect bool
	// Timeout bounds each command round trip.
	Timeout time.Duration

	Shell   *ishell.Shell
	Config  *env.Config
	Session *Session
}

// Session is an open controller connection served by its own loop.
type Session struct {
	Ref  l1.ControllerRef
	Conn l1.ControllerConn

	ctx    context.Context
	cancel context.CancelFunc
}

// Close stops the loop and the connection.
func (s *Session) Close() {
	s.cancel()
}

const (
	shellKey          = "$shell"
	unconnectedPrompt = "[none] > "
)

var (
	evalOnly       bool
	outputJSON     bool
	commandTimeout = 5 * time.Second

	commands = []*ishell.Cmd{
		&DiscoverCmd,
		&ConnectCmd,
		&DisconnectCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
	flag.DurationVar(&commandTimeout, "timeout", commandTimeout, "Command timeout, moves may need longer.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,
		Timeout:     commandTimeout,
		Shell:       ishell.New(),
		Config:      conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(unconnectedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeConnected wraps command func requires a connection.
func MustBeConnected(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Session == nil {
			c.Err(ErrNotConnected)
			return
		}
		fn(c)
	}
}

// WithAutoConnect sets AutoConnect.
func (s *Shell) WithAutoConnect(en bool) *Shell {
	s.AutoConnect = en
	return s
}

// Connect replaces the current session with a connection to ref.
func (s *Shell) Connect(ref l1.ControllerRef) error {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return err
	}
	sess := &Session{Ref: ref}
	sess.ctx, sess.cancel = context.WithCancel(context.Background())
	if sess.Conn, err = connector.Connect(sess.ctx, ref); err != nil {
		sess.cancel()
		return fmt.Errorf("connect %s: %w", ref.Name(), err)
	}
	loop := fx.NewLoop()
	if adder, ok := sess.Conn.(fx.LoopAdder); ok {
		loop.Add(adder)
	}
	go loop.Run(sess.ctx)

	s.Disconnect()
	s.Session = sess
	s.Shell.SetPrompt(ref.Name() + " > ")
	glog.V(2).Infof("connected %s", ref.Name())
	return nil
}

// Disconnect closes the current session if any.
func (s *Shell) Disconnect() {
	if s.Session == nil {
		return
	}
	s.Session.Close()
	s.Session = nil
	s.Shell.SetPrompt(unconnectedPrompt)
}

// Run connects the configured controller when AutoConnect is set, then
// either evaluates args as one command or runs interactively.
func (s *Shell) Run(args ...string) {
	if s.AutoConnect && s.Config.Ref.IsValid() {
		if s.Interactive {
			s.Shell.Printf("Connecting %s ...\n", s.Config.Ref.Name())
		}
		if err := s.Connect(s.Config.Ref); err != nil {
			glog.Exit(err)
		}
	}
	defer s.Disconnect()

	switch {
	case len(args) > 0:
		if err := s.Shell.Process(args...); err != nil {
			glog.Exit(err)
		}
	case s.Interactive:
		s.Shell.Run()
	default:
		glog.Exit("command expected")
	}
}

// Request sends a command and waits for the reply without printing.
// A CommandErr reply is returned as the error.
func Request(c *ishell.Context, msg fx.Message) (fx.Message, error) {
	sess := ShellFrom(c).Session
	if sess == nil {
		return nil, ErrNotConnected
	}
	timeout := ShellFrom(c).Timeout
	// the future expires at timeout, the extra second covers delivery of that.
	ctx, cancel := context.WithTimeout(sess.ctx, timeout+time.Second)
	defer cancel()
	res, err := l1.Wait(ctx, sess.Conn.DoCommandWithin(msg, timeout))
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%T: no reply within %v", msg, timeout)
	}
	return res, err
}

// DoCommand runs a command, waits for result and prints it.
func DoCommand(c *ishell.Context, msg fx.Message) error {
	res, err := Request(c, msg)
	if err != nil {
		c.Err(err)
		return err
	}
	return PrintResult(c, res)
}

// PrintResult prints a reply as JSON, "OK" or type name with text form.
func PrintResult(c *ishell.Context, res fx.Message) error {
	serializable, ok := res.(msgs.SerializableMessage)
	if !ok {
		return fmt.Errorf("unexpected reply %T", res)
	}
	if ShellFrom(c).OutputJSON {
		out, err := json.Marshal(serializable.Serializable())
		if err != nil {
			c.Err(err)
			return err
		}
		c.Println(string(out))
		return nil
	}
	if _, ok := res.(*msgs.CommandOK); ok {
		c.Println("OK")
		return nil
	}
	c.Printf("%s %s\n", reflect.Indirect(reflect.ValueOf(res)).Type().Name(), serializable.Serializable().String())
	return nil
}

// Main runs the shell with parsed flags and auto connect.
func Main(conf *env.Config) {
	New(conf).WithAutoConnect(true).Run(flag.Args()...)
}
