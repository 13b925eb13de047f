package sh

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/motion.go/pkg/l1"
)

// FormatInfo renders ControllerInfo in one line.
func FormatInfo(info l1.ControllerInfo) string {
	parts := []string{info.Ref.Name()}
	if info.Meta.Description != "" {
		parts[0] += ":"
		parts = append(parts, info.Meta.Description)
	}
	if len(info.Meta.Nodes) > 0 {
		parts = append(parts, fmt.Sprintf("nodes=%v", info.Meta.Nodes))
	}
	return strings.Join(parts, " ")
}

// FilterByType keeps controllers of typ, all when typ is empty.
func FilterByType(infos []l1.ControllerInfo, typ string) []l1.ControllerInfo {
	if typ == "" {
		return infos
	}
	var res []l1.ControllerInfo
	for _, info := range infos {
		if info.Ref.Type == typ {
			res = append(res, info)
		}
	}
	return res
}

// DiscoverControllers lists registered controllers sorted by name.
func (s *Shell) DiscoverControllers() ([]l1.ControllerInfo, error) {
	connector, err := s.Config.NewConnector()
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()
	infos, err := connector.Discover(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Ref.Name() < infos[j].Ref.Name()
	})
	return infos, nil
}

// SelectController picks one of the discovered controllers of typ, asking
// when there are several. It returns nil when nothing is found.
func (s *Shell) SelectController(typ string) (*l1.ControllerInfo, error) {
	infos, err := s.DiscoverControllers()
	if err != nil {
		return nil, err
	}
	infos = FilterByType(infos, typ)
	switch {
	case len(infos) == 0:
		return nil, nil
	case len(infos) == 1:
		return &infos[0], nil
	case !s.Interactive:
		return nil, fmt.Errorf("%d controllers discovered in non-interactive mode", len(infos))
	}
	items := make([]string, len(infos))
	for n, info := range infos {
		items[n] = FormatInfo(info)
	}
	return &infos[s.Shell.MultiChoice(items, "Which one to connect?")], nil
}

var (
	// DiscoverCmd lists controllers.
	DiscoverCmd = ishell.Cmd{
		Name:    "discover",
		Aliases: []string{"list", "l"},
		Help:    "list registered controllers",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			infos, err := s.DiscoverControllers()
			if err != nil {
				c.Err(err)
				return
			}
			if s.OutputJSON {
				if infos == nil {
					infos = []l1.ControllerInfo{}
				}
				out, err := json.Marshal(infos)
				if err != nil {
					c.Err(err)
					return
				}
				c.Println(string(out))
				return
			}
			if len(infos) == 0 {
				c.Println("No controllers found")
				return
			}
			for _, info := range infos {
				c.Println(FormatInfo(info))
			}
		},
	}

	// ConnectCmd connects a controller, discovering it when ID is omitted.
	ConnectCmd = ishell.Cmd{
		Name:    "connect",
		Aliases: []string{"c"},
		Help:    "[TYPE [ID]] connect a controller",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			var ref l1.ControllerRef
			if len(c.Args) >= 2 {
				ref.Type, ref.ID = c.Args[0], c.Args[1]
			} else {
				var typ string
				if len(c.Args) == 1 {
					typ = c.Args[0]
				}
				info, err := s.SelectController(typ)
				if err != nil {
					c.Err(err)
					return
				}
				if info == nil {
					c.Err(fmt.Errorf("no controller discovered"))
					return
				}
				ref = info.Ref
			}
			if err := s.Connect(ref); err != nil {
				c.Err(err)
			}
		},
	}

	// DisconnectCmd closes the current session.
	DisconnectCmd = ishell.Cmd{
		Name:    "disconnect",
		Aliases: []string{"d"},
		Help:    "close current connection",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Disconnect()
		},
	}
)
