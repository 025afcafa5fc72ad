package forgefile

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Parse parses a ForgeFile from its byte content. ContextDir on the
// returned BuildFile is left empty; callers resolving COPY sources
// against a file on disk should use ParseFile instead.
func Parse(data []byte) (*BuildFile, error) {
	bf := &BuildFile{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		spaceIdx := strings.IndexByte(line, ' ')
		if spaceIdx == -1 {
			continue
		}
		command := strings.ToUpper(line[:spaceIdx])
		args := strings.TrimSpace(line[spaceIdx+1:])

		instr, err := parseInstruction(command, args, lineNum)
		if err != nil {
			return nil, err
		}
		if instr != nil {
			bf.Instructions = append(bf.Instructions, *instr)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Message: "read error: " + err.Error()}
	}

	return bf, nil
}

// ParseFile reads and parses the ForgeFile at path, setting ContextDir
// to path's parent directory (or "." if path has none), per §4.6.
func ParseFile(path string) (*BuildFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	bf, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if dir == "" {
		dir = "."
	}
	bf.ContextDir = dir

	return bf, nil
}

func parseInstruction(command, args string, lineNum int) (*Instruction, error) {
	switch command {
	case "FROM":
		return &Instruction{Kind: KindFrom, Line: lineNum, Image: args}, nil

	case "COPY":
		tokens := strings.Fields(args)
		if len(tokens) < 2 {
			return nil, &ParseError{Line: lineNum, Message: "COPY requires source and destination"}
		}
		return &Instruction{Kind: KindCopy, Line: lineNum, Src: tokens[0], Dest: tokens[1]}, nil

	case "RUN":
		return &Instruction{Kind: KindRun, Line: lineNum, Command: args}, nil

	case "WORKDIR":
		return &Instruction{Kind: KindWorkdir, Line: lineNum, Path: args}, nil

	case "ENV":
		eqIdx := strings.IndexByte(args, '=')
		if eqIdx == -1 {
			return nil, &ParseError{Line: lineNum, Message: "ENV requires KEY=VALUE"}
		}
		return &Instruction{
			Kind:  KindEnv,
			Line:  lineNum,
			Key:   args[:eqIdx],
			Value: args[eqIdx+1:],
		}, nil

	case "ENTRYPOINT":
		entries, err := parseEntrypointArray(args, lineNum)
		if err != nil {
			return nil, err
		}
		return &Instruction{Kind: KindEntrypoint, Line: lineNum, Args: entries}, nil

	default:
		// Unknown commands are silently skipped.
		return nil, nil
	}
}

func parseEntrypointArray(args string, lineNum int) ([]string, error) {
	if !strings.HasPrefix(args, "[") || !strings.HasSuffix(args, "]") {
		return nil, &ParseError{Line: lineNum, Message: "ENTRYPOINT requires a JSON array, e.g. [\"cmd\", \"arg\"]"}
	}

	inner := args[1 : len(args)-1]
	if strings.TrimSpace(inner) == "" {
		return []string{}, nil
	}

	var result []string
	for _, tok := range strings.Split(inner, ",") {
		tok = strings.TrimSpace(tok)
		tok = strings.Trim(tok, `"`)
		if tok == "" {
			continue
		}
		result = append(result, tok)
	}
	return result, nil
}
