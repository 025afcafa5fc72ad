// Package forgefile parses a ForgeFile — the line-oriented build file
// grammar consumed by the builder — into an ordered sequence of
// Instructions.
//
// Supported instructions:
//
//	FROM <image>
//	COPY <src> <dest>
//	RUN <command>
//	WORKDIR <path>
//	ENV <KEY>=<VALUE>
//	ENTRYPOINT ["executable", "arg1", ...]
//
// Unknown instructions are skipped rather than rejected; this mirrors
// the original forge-container's behaviour of tolerating directives it
// doesn't recognise instead of failing the whole parse.
package forgefile
