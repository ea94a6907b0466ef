package llm

import (
	"bufio"
	"io"
)

// maxLineBytes bounds a single NDJSON line from Ollama. Progress and token
// chunks are small; the limit only guards against a runaway body.
const maxLineBytes = 1024 * 1024

// scanLines frames a chunked body into newline-delimited records and hands
// each non-empty line to handle. A final line with no trailing newline is
// still emitted at EOF; if the body was cut mid-record, that trailing
// fragment is not valid JSON and the caller skips it like any other
// malformed line. Callers are expected to tolerate and skip lines that
// fail to parse.
func scanLines(r io.Reader, handle func(line []byte)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		handle(line)
	}
	return scanner.Err()
}
