// Package discovery advertises the bridge on the local network over mDNS so
// operators can locate it without knowing its address.
package discovery

import (
	"fmt"
	"net"
	"strconv"

	"github.com/betamos/zeroconf"
)

const ServiceType = "_telebridge._tcp"

// Advertiser keeps the mDNS publication alive until Close.
type Advertiser struct {
	client *zeroconf.Client
	port   int
}

// Advertise publishes name on port.
func Advertise(name string, port int) (*Advertiser, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("zeroconf: invalid port %d", port)
	}
	svc := zeroconf.NewService(zeroconf.NewType(ServiceType), name, uint16(port))
	client, err := zeroconf.New().Publish(svc).Open()
	if err != nil {
		return nil, fmt.Errorf("zeroconf: %w", err)
	}
	return &Advertiser{client: client, port: port}, nil
}

func (a *Advertiser) Port() int { return a.port }

// Close withdraws the advertisement.
func (a *Advertiser) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}

// PortOf extracts the numeric port of a listen address such as ":8011".
func PortOf(addr string) (int, error) {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return 0, err
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 0, fmt.Errorf("port %q: %w", p, err)
	}
	return port, nil
}
