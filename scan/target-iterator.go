package scan

import (
	"io"
	"net"
)

// TargetIterator yields the addresses named by a target. A CIDR block yields
// every address in the block, anything else is yielded once as given so that
// name resolution happens at dial time.
type TargetIterator struct {
	target string
	isCIDR bool
	index  int
	ip     net.IP
	ipnet  *net.IPNet
}

func NewTargetIterator(target string) *TargetIterator {

	ip, ipnet, err := net.ParseCIDR(target)

	ti := &TargetIterator{
		target: target,
		isCIDR: err == nil,
	}

	if ti.isCIDR {
		ti.ip = ip.Mask(ipnet.Mask)
		ti.ipnet = ipnet
	}

	return ti
}

// Peek returns the next target without advancing.
func (ti *TargetIterator) Peek() (string, error) {
	if !ti.isCIDR {
		if ti.index > 0 {
			return "", io.EOF
		}
		return ti.target, nil
	}

	if ti.ipnet.Contains(ti.ip) {
		return ti.ip.String(), nil
	}

	return "", io.EOF
}

func (ti *TargetIterator) Next() (string, error) {

	next, err := ti.Peek()
	if err != nil {
		return "", err
	}

	ti.index++
	if ti.isCIDR {
		ti.incrementIP()
	}
	return next, nil
}

func (ti *TargetIterator) incrementIP() {
	for j := len(ti.ip) - 1; j >= 0; j-- {
		ti.ip[j]++
		if ti.ip[j] > 0 {
			break
		}
	}
}
