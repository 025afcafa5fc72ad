package forgefile

import "testing"

func TestParseSimple(t *testing.T) {
	input := `FROM alpine
RUN echo hello > /greeting
ENTRYPOINT ["/bin/cat", "/greeting"]
`
	bf, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bf.Instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(bf.Instructions))
	}
	if bf.Instructions[0].Kind != KindFrom || bf.Instructions[0].Image != "alpine" {
		t.Errorf("unexpected FROM: %+v", bf.Instructions[0])
	}
	if bf.Instructions[1].Kind != KindRun || bf.Instructions[1].Command != "echo hello > /greeting" {
		t.Errorf("unexpected RUN: %+v", bf.Instructions[1])
	}
	ep := bf.Instructions[2]
	if ep.Kind != KindEntrypoint {
		t.Fatalf("expected ENTRYPOINT, got %v", ep.Kind)
	}
	want := []string{"/bin/cat", "/greeting"}
	if len(ep.Args) != len(want) {
		t.Fatalf("expected args %v, got %v", want, ep.Args)
	}
	for i := range want {
		if ep.Args[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], ep.Args[i])
		}
	}
}

func TestParseBlankAndComments(t *testing.T) {
	input := "\n# a comment\n   \nFROM alpine\n"
	bf, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bf.Instructions) != 1 {
		t.Fatalf("expected 1 instruction, got %d", len(bf.Instructions))
	}
}

func TestParseLineWithoutSpaceIgnored(t *testing.T) {
	bf, err := Parse([]byte("FROM\nNOTACOMMAND\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bf.Instructions) != 0 {
		t.Fatalf("expected 0 instructions, got %d", len(bf.Instructions))
	}
}

func TestParseCopyRequiresTwoTokens(t *testing.T) {
	_, err := Parse([]byte("COPY onlyone\n"))
	if err == nil {
		t.Fatal("expected parse error for COPY with one token")
	}
}

func TestParseEnvLegacyMultiEquals(t *testing.T) {
	// "ENV  FOO=bar=baz" -> key FOO, value "bar=baz" (split on *first* '=').
	bf, err := Parse([]byte("ENV FOO=bar=baz\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	instr := bf.Instructions[0]
	if instr.Key != "FOO" || instr.Value != "bar=baz" {
		t.Errorf("expected FOO=bar=baz, got %s=%s", instr.Key, instr.Value)
	}
}

func TestParseEnvNoEqualsIsError(t *testing.T) {
	_, err := Parse([]byte("ENV NOEQ\n"))
	if err == nil {
		t.Fatal("expected parse error for ENV without '='")
	}
}

func TestParseUnknownCommandSkipped(t *testing.T) {
	bf, err := Parse([]byte("FROM alpine\nLABEL foo=bar\nRUN true\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bf.Instructions) != 2 {
		t.Fatalf("expected 2 instructions (LABEL skipped), got %d", len(bf.Instructions))
	}
}

func TestParseCommandCaseInsensitive(t *testing.T) {
	bf, err := Parse([]byte("from alpine\nRun echo hi\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if bf.Instructions[0].Kind != KindFrom {
		t.Errorf("expected lowercase 'from' to parse as FROM")
	}
	if bf.Instructions[1].Kind != KindRun {
		t.Errorf("expected 'Run' to parse as RUN")
	}
}

func TestParseEmptyFileYieldsEmptyInstructions(t *testing.T) {
	bf, err := Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(bf.Instructions) != 0 {
		t.Fatalf("expected 0 instructions, got %d", len(bf.Instructions))
	}
}

func TestDescriptorStability(t *testing.T) {
	a := Instruction{Kind: KindRun, Command: "echo hello > /greeting"}
	b := Instruction{Kind: KindRun, Command: "echo world > /greeting"}
	if a.Descriptor() == b.Descriptor() {
		t.Fatal("descriptors for different RUN commands must differ")
	}
	if a.Descriptor() != (Instruction{Kind: KindRun, Command: "echo hello > /greeting"}).Descriptor() {
		t.Fatal("descriptor must be deterministic for identical instructions")
	}
}
