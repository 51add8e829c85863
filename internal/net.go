package internal

import "net"

// InterfaceNames returns the names of the network interfaces configured on the host.
func InterfaceNames() ([]string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(ifaces))
	for i := range ifaces {
		names[i] = ifaces[i].Name
	}
	return names, nil
}

// HasInterface reports whether name is in names. Comparison is exact and case sensitive.
func HasInterface(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
