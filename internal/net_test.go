package internal

import "testing"

func TestHasInterface(t *testing.T) {
	names := []string{"lo", "eth0", "wlan0"}
	for _, name := range []string{"lo", "eth0", "wlan0"} {
		if !HasInterface(names, name) {
			t.Errorf("%q not found", name)
		}
	}
	for _, name := range []string{"", "ETH0", "eth", "eth0 ", "eth1"} {
		if HasInterface(names, name) {
			t.Errorf("%q should not match", name)
		}
	}
	if HasInterface(nil, "lo") {
		t.Error("match on empty list")
	}
}

func TestInterfaceNames(t *testing.T) {
	names, err := InterfaceNames()
	if err != nil {
		t.Skip("interfaces unavailable:", err)
	}
	seen := make(map[string]bool)
	for _, name := range names {
		if name == "" {
			t.Error("empty interface name")
		}
		if seen[name] {
			t.Errorf("duplicate interface %q", name)
		}
		seen[name] = true
	}
}
