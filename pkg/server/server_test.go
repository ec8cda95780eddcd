package server

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bastiangx/jumble/pkg/dictionary"
	"github.com/bastiangx/jumble/pkg/solver"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

const testWords = "cat\nact\ntac\nat\nta\nbee\n"

func memSolver(opts solver.Options) *solver.Solver {
	return solver.NewWithLoaders("mem", opts,
		func(string) (*dictionary.Flat, error) {
			return dictionary.LoadFlat(strings.NewReader(testWords))
		},
		func(string) (*dictionary.Grouped, error) {
			return dictionary.LoadGrouped(strings.NewReader(testWords))
		},
	)
}

type brokenSolver struct{}

func (brokenSolver) Solve(string) (solver.Result, error) {
	return solver.Result{}, dictionary.ErrSourceUnavailable
}

func (b brokenSolver) SolveWith(raw string, _ solver.Strategy) (solver.Result, error) {
	return b.Solve(raw)
}

func (brokenSolver) Info() solver.Info { return solver.Info{} }

// run feeds reqs to a fresh server and returns a decoder over its output,
// positioned after the ready frame.
func run(t *testing.T, s solver.ISolver, reqs ...any) *msgpack.Decoder {
	t.Helper()
	var in, out bytes.Buffer
	enc := msgpack.NewEncoder(&in)
	for _, req := range reqs {
		require.NoError(t, enc.Encode(req))
	}

	require.NoError(t, NewServerWithIO(s, &in, &out).Start())

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)
	return dec
}

func TestServerSolve(t *testing.T) {
	testCases := []struct {
		req         Request
		expected    SolveResponse
		description string
	}{
		{
			req: Request{ID: "r1", Query: "tca"},
			expected: SolveResponse{
				ID:       "r1",
				Words:    []string{"act", "cat", "tac", "at", "ta"},
				Count:    5,
				Strategy: "permutation",
			},
			description: "Solve is the default action",
		},
		{
			req: Request{ID: "r2", Action: "solve", Query: "TCA", Limit: 2},
			expected: SolveResponse{
				ID:       "r2",
				Words:    []string{"act", "cat"},
				Count:    5,
				Strategy: "permutation",
			},
			description: "Limit truncates words but not the count",
		},
		{
			req: Request{ID: "r3", Query: "zzz"},
			expected: SolveResponse{
				ID:       "r3",
				Words:    []string{},
				Count:    0,
				Strategy: "permutation",
			},
			description: "No matches is an empty list",
		},
		{
			req: Request{ID: "r4", Query: "tca", Strategy: "sig"},
			expected: SolveResponse{
				ID:       "r4",
				Words:    []string{"act", "cat", "tac", "at", "ta"},
				Count:    5,
				Strategy: "signature",
			},
			description: "Request strategy overrides the threshold",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			dec := run(t, memSolver(solver.DefaultOptions()), tc.req)

			var resp SolveResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tc.expected.ID, resp.ID)
			if len(tc.expected.Words) == 0 {
				assert.Empty(t, resp.Words)
			} else {
				assert.Equal(t, tc.expected.Words, resp.Words)
			}
			assert.Equal(t, tc.expected.Count, resp.Count)
			assert.Equal(t, tc.expected.Strategy, resp.Strategy)
			assert.GreaterOrEqual(t, resp.TimeTaken, int64(0))
		})
	}
}

func TestServerStrategiesAgree(t *testing.T) {
	perm := solver.DefaultOptions()
	perm.Strategy = solver.Permutation
	sig := solver.DefaultOptions()
	sig.Strategy = solver.Signature

	var permResp, sigResp SolveResponse
	require.NoError(t, run(t, memSolver(perm), Request{ID: "p", Query: "acte"}).Decode(&permResp))
	require.NoError(t, run(t, memSolver(sig), Request{ID: "s", Query: "acte"}).Decode(&sigResp))

	assert.Equal(t, "permutation", permResp.Strategy)
	assert.Equal(t, "signature", sigResp.Strategy)
	assert.Equal(t, permResp.Words, sigResp.Words)
}

func TestServerAssignsMissingID(t *testing.T) {
	dec := run(t, memSolver(solver.DefaultOptions()), Request{Action: "ping"})

	var resp StatusResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)
}

func TestServerInfo(t *testing.T) {
	dec := run(t, memSolver(solver.DefaultOptions()),
		Request{ID: "i0", Action: "info"},
		Request{ID: "r1", Query: "cat"},
		Request{ID: "i1", Action: "info"},
	)

	var before InfoResponse
	require.NoError(t, dec.Decode(&before))
	assert.Equal(t, "i0", before.ID)
	assert.Equal(t, "mem", before.Source)
	assert.Equal(t, solver.DefaultThreshold, before.Threshold)
	assert.Equal(t, "auto", before.Strategy)
	assert.True(t, before.Prune)
	assert.Zero(t, before.FlatWords, "nothing loaded yet")

	var solved SolveResponse
	require.NoError(t, dec.Decode(&solved))

	var after InfoResponse
	require.NoError(t, dec.Decode(&after))
	assert.Equal(t, 6, after.FlatWords)
	assert.Zero(t, after.GroupedWords, "grouped variant is never needed for short queries")
	assert.Equal(t, 3, after.Requests)
}

func TestServerErrors(t *testing.T) {
	testCases := []struct {
		solver      solver.ISolver
		req         Request
		code        int
		description string
	}{
		{
			solver:      memSolver(solver.DefaultOptions()),
			req:         Request{ID: "e1", Action: "shuffle"},
			code:        400,
			description: "Unknown action",
		},
		{
			solver:      memSolver(solver.DefaultOptions()),
			req:         Request{ID: "e2", Query: "cat", Limit: -1},
			code:        400,
			description: "Negative limit",
		},
		{
			solver:      memSolver(solver.DefaultOptions()),
			req:         Request{ID: "e4", Query: "cat", Strategy: "guess"},
			code:        400,
			description: "Unknown strategy",
		},
		{
			solver:      brokenSolver{},
			req:         Request{ID: "e3", Query: "cat"},
			code:        500,
			description: "Dictionary unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			dec := run(t, tc.solver, tc.req)

			var resp ErrorResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tc.req.ID, resp.ID)
			assert.Equal(t, tc.code, resp.Code)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestServerUnprunedPermutationLimit(t *testing.T) {
	unpruned := solver.DefaultOptions()
	unpruned.Prune = false
	limit := 2 * solver.DefaultThreshold
	long := strings.Repeat("a", limit+1)

	testCases := []struct {
		opts        solver.Options
		req         Request
		code        int
		description string
	}{
		{
			opts:        unpruned,
			req:         Request{ID: "l1", Query: long, Strategy: "perm"},
			code:        400,
			description: "Forced permutation past the limit is rejected",
		},
		{
			opts:        unpruned,
			req:         Request{ID: "l2", Query: "tca", Strategy: "perm"},
			description: "Short forced permutation is solved",
		},
		{
			opts:        unpruned,
			req:         Request{ID: "l3", Query: long, Strategy: "sig"},
			description: "Signature has no limit",
		},
		{
			opts:        solver.DefaultOptions(),
			req:         Request{ID: "l4", Query: strings.Repeat("z", limit+1), Strategy: "perm"},
			description: "Pruned permutation has no limit",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			dec := run(t, memSolver(tc.opts), tc.req)

			if tc.code != 0 {
				var resp ErrorResponse
				require.NoError(t, dec.Decode(&resp))
				assert.Equal(t, tc.req.ID, resp.ID)
				assert.Equal(t, tc.code, resp.Code)
				assert.Contains(t, resp.Error, "too long")
				return
			}
			var resp SolveResponse
			require.NoError(t, dec.Decode(&resp))
			assert.Equal(t, tc.req.ID, resp.ID)
			assert.NotEmpty(t, resp.Strategy)
		})
	}
}

func TestServerKeepsServingAfterError(t *testing.T) {
	dec := run(t, memSolver(solver.DefaultOptions()),
		Request{ID: "bad", Action: "nope"},
		Request{ID: "good", Action: "ping"},
	)

	var errResp ErrorResponse
	require.NoError(t, dec.Decode(&errResp))
	assert.Equal(t, 400, errResp.Code)

	var ok StatusResponse
	require.NoError(t, dec.Decode(&ok))
	assert.Equal(t, "good", ok.ID)
	assert.Equal(t, "ok", ok.Status)
}

func TestServerMalformedFrame(t *testing.T) {
	in := bytes.NewBuffer([]byte{0xc1})
	var out bytes.Buffer

	err := NewServerWithIO(memSolver(solver.DefaultOptions()), in, &out).Start()
	require.Error(t, err)

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var resp ErrorResponse
	require.NoError(t, dec.Decode(&resp))
	assert.Equal(t, 400, resp.Code)
}
