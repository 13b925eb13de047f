package main

//go-build: CGO_ENABLED=0

import (
	"flag"

	"github.com/golang/glog"

	"github.com/robotalks/motion.go/pkg/axisctl"
	fx "github.com/robotalks/motion.go/pkg/framework"
	"github.com/robotalks/motion.go/pkg/l0/serial"
	"github.com/robotalks/motion.go/pkg/l1"
	env "github.com/robotalks/motion.go/pkg/l1/env/controller"
)

func init() {
	env.SetControllerType(env.DefaultControllerType, l1.ControllerMeta{Description: "Multi-axis motion controller"})
	env.SetupFlags()
	serial.SetupFlags()
	axisctl.SetupFlags()
}

func main() {
	flag.Parse()

	axisConf := axisctl.NewConfig()
	envConf := env.NewConfig()
	envConf.Info.Meta.Nodes = axisConf.Nodes
	env := envConf.MustNewEnv()

	port, err := axisConf.OpenPort(serial.Default())
	if err != nil {
		glog.Exitf("open port: %v", err)
	}
	coord := axisConf.NewCoordinator(port)
	defer coord.Close()

	ctl := axisConf.NewController(coord)
	ctl.Registrar = env.Registrar
	glog.Infof("controller %s nodes %v registered at %v", envConf.Info.Ref.Name(), axisConf.Nodes, env.RegistryURLs)

	fx.NewLoop().Add(env, ctl).RunOrFail()
	ctl.Wait()
}
