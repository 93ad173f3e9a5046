/*
Package server answers word ladder requests over stdin/stdout using msgpack.

# IPC

Clients write a stream of msgpack maps to the server's stdin and read one
msgpack map per request from its stdout. Before the first request the server
writes a status map:

	{"status": "ready", "words": 172823, "classes": 160391}

A ladder request names the two endpoints and optionally a step budget:

	{"id": "req_001", "f": "cat", "t": "dog", "m": 100000}

A found ladder comes back with its words, its number of moves, the number of
search steps taken and the time spent in microseconds:

	{"id": "req_001", "w": ["cat", "at", "oat", "to", "pot"], "n": 4, "s": 4, "t": 85}

A failed request comes back with a message and a code. The codes are the exit
codes of the command line tool: 2 invalid request, 4 word not in dictionary,
5 no ladder, 6 step budget exhausted, 1 anything else.

	{"id": "req_002", "e": "\"xyzzy\": word not in dictionary", "c": 4}

Requests are served one at a time in arrival order. The server exits cleanly
when stdin reaches EOF.
*/
package server

// LadderRequest asks for the ladder between From and To.
type LadderRequest struct {
	ID       string `msgpack:"id"`
	From     string `msgpack:"f"`
	To       string `msgpack:"t"`
	MaxSteps int    `msgpack:"m,omitempty"`
}

// LadderResponse carries a found ladder.
type LadderResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"w"`
	Moves     int      `msgpack:"n"`
	Steps     int      `msgpack:"s"`
	TimeTaken int64    `msgpack:"t"`
}

// LadderError holds basic error information for failed requests.
type LadderError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}

// Status is written once at startup.
type Status struct {
	Status  string `msgpack:"status"`
	Words   int    `msgpack:"words"`
	Classes int    `msgpack:"classes"`
}

// Error codes, shared with the command line exit codes.
const (
	CodeInternal  = 1
	CodeInvalid   = 2
	CodeLoad      = 3
	CodeNotInDict = 4
	CodeNoPath    = 5
	CodeAborted   = 6
)
