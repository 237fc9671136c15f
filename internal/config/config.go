// Package config resolves the socket endpoints the wakey CLI sends with.
// Defaults match the library: any local interface with an ephemeral port as
// the source, limited broadcast on the Wake-on-LAN port as the destination.
// Both can be overridden through WAKEY_SOURCE and WAKEY_DESTINATION, which
// keeps the command line itself down to the single address argument.
package config

import (
	"fmt"
	"net"

	"github.com/spf13/viper"
)

const (
	defaultSource      = "0.0.0.0:0"
	defaultDestination = "255.255.255.255:9"
)

// Endpoints holds the resolved source and destination addresses for one send.
type Endpoints struct {
	Source      *net.UDPAddr
	Destination *net.UDPAddr
}

// Loader reads endpoint settings from the environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a Loader with defaults applied.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix("WAKEY")
	v.AutomaticEnv()
	v.SetDefault("source", defaultSource)
	v.SetDefault("destination", defaultDestination)
	return &Loader{v: v}
}

// Load resolves the configured endpoints into UDP addresses.
func (l *Loader) Load() (*Endpoints, error) {
	src, err := net.ResolveUDPAddr("udp4", l.v.GetString("source"))
	if err != nil {
		return nil, fmt.Errorf("invalid source endpoint %q: %w", l.v.GetString("source"), err)
	}

	dst, err := net.ResolveUDPAddr("udp4", l.v.GetString("destination"))
	if err != nil {
		return nil, fmt.Errorf("invalid destination endpoint %q: %w", l.v.GetString("destination"), err)
	}

	return &Endpoints{Source: src, Destination: dst}, nil
}
