package seed

import "testing"

func TestParseLddOutputArrowForm(t *testing.T) {
	output := "\tlibc.so.6 => /lib/x86_64-linux-gnu/libc.so.6 (0x00007f0000000000)\n" +
		"\tlinux-vdso.so.1 (0x00007ffe00000000)\n"
	libs := parseLddOutput(output)
	if len(libs) != 1 || libs[0] != "/lib/x86_64-linux-gnu/libc.so.6" {
		t.Fatalf("unexpected libs: %v", libs)
	}
}

func TestParseLddOutputDirectPathForm(t *testing.T) {
	output := "\t/lib64/ld-linux-x86-64.so.2 (0x00007f0000000000)\n"
	libs := parseLddOutput(output)
	if len(libs) != 1 || libs[0] != "/lib64/ld-linux-x86-64.so.2" {
		t.Fatalf("unexpected libs: %v", libs)
	}
}

func TestParseLddOutputSkipsNonAbsolute(t *testing.T) {
	output := "\tnotfound.so => not found\n"
	libs := parseLddOutput(output)
	if len(libs) != 0 {
		t.Fatalf("expected no libs, got %v", libs)
	}
}
