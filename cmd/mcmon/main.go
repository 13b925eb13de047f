package main

//go-build: CGO_ENABLED=0

import (
	"context"
	"flag"
	"log"
	"net/url"
	"reflect"
	"strings"

	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l1/comm/mqtt"
	env "github.com/robotalks/motion.go/pkg/l1/env/connector"
	"github.com/robotalks/motion.go/pkg/l1/msgs"
)

func init() {
	env.SetupFlags()
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	conf := env.NewConfig()
	parsedURL, err := url.Parse(conf.RegistryURL)
	if err != nil {
		log.Fatalln(err)
	}
	if parsedURL.Scheme == "ws" || parsedURL.Scheme == "wss" {
		monitorConn(conf)
		return
	}
	monitorBroker(conf.RegistryURL)
}

// monitorBroker prints every message seen under the topic prefix.
func monitorBroker(brokerURL string) {
	q, err := mqtt.NewQueueFromURL(brokerURL)
	if err != nil {
		log.Fatalln(err)
	}
	if token := q.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalln(token.Error())
	}
	defer q.Close()

	q.Sub("#", mqtt.Handler(func(topic string, payload []byte) {
		if strings.HasSuffix(topic, "/meta") {
			log.Printf("%s: %s", topic, string(payload))
			return
		}
		typed, err := msgs.DecodeTyped(payload)
		if err != nil {
			log.Printf("%s: bad message: %v", topic, err)
			return
		}
		msg, err := typed.Decode()
		if err != nil {
			log.Printf("%s: decode error: (type_id=%x) %v", topic, typed.TypeId, err)
			return
		}
		printMsg(topic, msg)
	}))
	fx.NewRunner().HandleSignals().Go(fx.RunFunc(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})).Wait()
}

// monitorConn connects one controller and prints its events.
func monitorConn(conf *env.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	conn, ref, err := conf.Connect(ctx)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("connected %s", ref.Name())
	loop := fx.NewLoop()
	if adder, ok := conn.(fx.LoopAdder); ok {
		loop.Add(adder)
	}
	loop.AddController(fx.PrLvControl, fx.ControlFunc(func(cc fx.ControlContext) error {
		cc.Messages().ProcessMessages(fx.ProcessMessageFunc(func(mctx fx.MessageProcessingContext) {
			mctx.MessageTaken()
			printMsg(ref.Name(), mctx.CurrentMessage())
		}))
		return nil
	}))
	loop.RunOrFail()
}

func printMsg(source string, msg fx.Message) {
	serializable, ok := msg.(msgs.SerializableMessage)
	if !ok {
		return
	}
	log.Printf("%s: [%s] %s", source,
		reflect.Indirect(reflect.ValueOf(msg)).Type().Name(),
		serializable.Serializable().String())
}
