package scan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPortSpec is matched by every error ParsePortSpec returns.
var ErrInvalidPortSpec = errors.New("invalid port specification")

type PortSpecError struct {
	Token  string
	Reason string
}

func (e *PortSpecError) Error() string {
	return fmt.Sprintf("%s: '%s': %s", ErrInvalidPortSpec, e.Token, e.Reason)
}

func (e *PortSpecError) Is(target error) bool {
	return target == ErrInvalidPortSpec
}

// ParsePortSpec expands a specification such as "22,80,8000:8100" into the
// ports it names. Tokens are comma separated and are either a single port or
// an inclusive start:end range. Ports come back in token order, ranges
// ascending, and duplicates are kept.
func ParsePortSpec(spec string) ([]uint16, error) {
	ports := []uint16{}
	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			return nil, &PortSpecError{Token: token, Reason: "empty token"}
		}

		if !strings.Contains(token, ":") {
			port, err := parsePort(token)
			if err != nil {
				return nil, &PortSpecError{Token: token, Reason: err.Error()}
			}
			ports = append(ports, port)
			continue
		}

		bounds := strings.Split(token, ":")
		if len(bounds) != 2 {
			return nil, &PortSpecError{Token: token, Reason: "range must be start:end"}
		}

		start, err := parsePort(bounds[0])
		if err != nil {
			return nil, &PortSpecError{Token: token, Reason: "bad range start: " + err.Error()}
		}
		end, err := parsePort(bounds[1])
		if err != nil {
			return nil, &PortSpecError{Token: token, Reason: "bad range end: " + err.Error()}
		}
		if start > end {
			return nil, &PortSpecError{Token: token, Reason: fmt.Sprintf("range start %d is after end %d", start, end)}
		}

		// int loop variable, uint16 would wrap at 65535
		for p := int(start); p <= int(end); p++ {
			ports = append(ports, uint16(p))
		}
	}
	return ports, nil
}

func parsePort(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("port %s is out of range 0-65535", s)
		}
		return 0, fmt.Errorf("'%s' is not a port number", s)
	}
	return uint16(v), nil
}

func DescribePort(port uint16) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}
