/*
Package server implements msgpack IPC for jumble solving.

Clients write msgpack-encoded requests to stdin and read one msgpack response
per request from stdout. The dictionary is loaded on the first query that
needs it and reused for the life of the process.

# IPC

Every request carries an ID that is echoed in its response. Requests without
one are assigned a random UUID.

Solve requests look like this (action, strategy and limit may be omitted):

	{"id": "req_001", "action": "solve", "q": "hiresamir", "s": "sig", "l": 10}

The server replies with the ordered words, the total match count, the
strategy used and the time taken in microseconds:

	{"id": "req_001", "w": ["hermits", ...], "c": 57, "s": "signature", "t": 4120}

Other actions:

	{"id": "i1", "action": "info"}   -> dictionary and solver settings
	{"id": "p1", "action": "ping"}   -> {"id": "p1", "status": "ok"}

Failures come back as {"id", "e", "c"} with code 400 for bad requests and 500
when the word list cannot be read.
*/
package server

// Request is any client message
type Request struct {
	ID       string `msgpack:"id"`
	Action   string `msgpack:"action,omitempty"` // "solve" (default), "info", "ping"
	Query    string `msgpack:"q,omitempty"`
	Strategy string `msgpack:"s,omitempty"` // overrides the configured strategy
	Limit    int    `msgpack:"l,omitempty"`
}

// SolveResponse carries the ordered matches for one query
type SolveResponse struct {
	ID        string   `msgpack:"id"`
	Words     []string `msgpack:"w"`
	Count     int      `msgpack:"c"` // total matches, before the limit
	Strategy  string   `msgpack:"s"`
	TimeTaken int64    `msgpack:"t"`
}

// InfoResponse describes the solver and any dictionary loaded so far
type InfoResponse struct {
	ID           string `msgpack:"id"`
	Status       string `msgpack:"status"`
	Source       string `msgpack:"source"`
	Threshold    int    `msgpack:"threshold"`
	Strategy     string `msgpack:"strategy"`
	Prune        bool   `msgpack:"prune"`
	FlatWords    int    `msgpack:"flat_words,omitempty"`
	GroupedWords int    `msgpack:"grouped_words,omitempty"`
	Groups       int    `msgpack:"groups,omitempty"`
	Requests     int    `msgpack:"requests"`
}

// StatusResponse answers pings and announces readiness
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
