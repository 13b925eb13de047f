package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/axisctl"
	"github.com/robotalks/motion.go/pkg/cli/sh"
	"github.com/robotalks/motion.go/pkg/l0/serial"
	"github.com/robotalks/motion.go/pkg/l1"
	env "github.com/robotalks/motion.go/pkg/l1/env/connector"
	ctlenv "github.com/robotalks/motion.go/pkg/l1/env/controller"

	_ "github.com/robotalks/motion.go/pkg/cli/cmds/axis"
)

var local bool

func init() {
	env.SetupFlags()
	serial.SetupFlags()
	axisctl.SetupFlags()
	flag.BoolVar(&local, "local", local, "Drive the serial port (or simulation) in process instead of connecting a controller.")
}

func main() {
	flag.Parse()

	conf := env.NewConfig()
	if local || axisctl.Default().Simulate {
		axisConf := axisctl.NewConfig()
		port, err := axisConf.OpenPort(serial.Default())
		if err != nil {
			glog.Exitf("open port: %v", err)
		}
		coord := axisConf.NewCoordinator(port)
		defer coord.Close()
		info := l1.ControllerInfo{
			Ref: l1.ControllerRef{Type: ctlenv.DefaultControllerType, ID: "local"},
			Meta: l1.ControllerMeta{
				Description: "local " + serial.Default().Name,
				Nodes:       axisConf.Nodes,
			},
		}
		if axisConf.Simulate {
			info.Meta.Description = "local simulation"
		}
		conf.Ref = info.Ref
		conf.Connector = axisctl.NewLocal(info, axisConf.NewController(coord))
	}
	sh.Main(conf)
}
