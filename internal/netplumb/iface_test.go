package netplumb

import "testing"

func TestParseDefaultInterfaceFindsDevToken(t *testing.T) {
	out := "default via 192.168.1.1 dev eth0 proto dhcp metric 100 \n"
	iface, ok := parseDefaultInterface(out)
	if !ok || iface != "eth0" {
		t.Fatalf("expected eth0, got %q (ok=%v)", iface, ok)
	}
}

func TestParseDefaultInterfaceNoDevToken(t *testing.T) {
	_, ok := parseDefaultInterface("\n")
	if ok {
		t.Fatal("expected no match for empty route output")
	}
}

func TestParseDefaultInterfaceDevIsLastToken(t *testing.T) {
	_, ok := parseDefaultInterface("default via 10.0.0.1 dev")
	if ok {
		t.Fatal("expected no match when dev has no following token")
	}
}
