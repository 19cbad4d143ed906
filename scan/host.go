package scan

import (
	"context"
	"net"
	"time"

	"github.com/google/gopacket/macs"
	"github.com/mostlygeek/arp"
)

const emptyMAC = "00:00:00:00:00:00"

// Host describes a scan target beyond its address. Fields stay empty when
// the corresponding lookup fails.
type Host struct {
	IP           string `json:"ip,omitempty" yaml:"ip,omitempty"`
	MAC          string `json:"mac,omitempty" yaml:"mac,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty" yaml:"manufacturer,omitempty"`
	Name         string `json:"name,omitempty" yaml:"name,omitempty"`
}

// DescribeHost resolves target and, for devices present in the local ARP
// cache, fills in MAC, manufacturer and reverse name. Lookups are bounded by
// timeout.
func DescribeHost(ctx context.Context, target string, timeout time.Duration) Host {

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var h Host

	ip := net.ParseIP(target)
	if ip == nil {
		addrs, err := net.DefaultResolver.LookupIPAddr(ctx, target)
		if err != nil || len(addrs) == 0 {
			return h
		}
		ip = addrs[0].IP
	}
	h.IP = ip.String()

	macStr := arp.Search(h.IP)
	if macStr == "" || macStr == emptyMAC {
		return h
	}

	mac, err := net.ParseMAC(macStr)
	if err != nil || len(mac) < 3 {
		return h
	}
	h.MAC = mac.String()
	h.Manufacturer = lookupManufacturer(mac)

	// only bother looking up hostname for local devices
	if names, err := net.DefaultResolver.LookupAddr(ctx, h.IP); err == nil && len(names) > 0 {
		h.Name = names[0]
	}

	return h
}

func lookupManufacturer(mac net.HardwareAddr) string {
	prefix := [3]byte{
		mac[0],
		mac[1],
		mac[2],
	}
	return macs.ValidMACPrefixMap[prefix]
}
