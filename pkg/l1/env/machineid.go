// Package env provides shared helpers for setting up L1 environments.
package env

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// AppID scopes the machine ID so it doesn't expose the raw one.
const AppID = "motion.go"

// MachineID retrieves the ID identifying the machine, falls back to
// "local" when the machine ID is unavailable.
func MachineID() string {
	id, err := machineid.ProtectedID(AppID)
	if err != nil {
		glog.Warningf("machine id unavailable: %v", err)
		return "local"
	}
	if len(id) > 16 {
		id = id[:16]
	}
	return id
}
