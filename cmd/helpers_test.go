package cmd

import (
	"bytes"
	"context"
	"sync"

	"github.com/spf13/cobra"

	"github.com/eykd/nanoid-go/internal/config"
)

// defaultLoader returns the built-in defaults, as if no file or env were set.
func defaultLoader() (config.Config, error) {
	return config.Default(), nil
}

// staticLoader returns a ConfigLoader that always yields c.
func staticLoader(c config.Config) ConfigLoader {
	return func() (config.Config, error) {
		return c, nil
	}
}

// execute runs sub under a fresh root command and returns the exit code with
// captured stdout and stderr.
func execute(sub *cobra.Command, args ...string) (code int, stdout, stderr string) {
	root := NewRootCmd()
	root.AddCommand(sub)

	var out, errOut bytes.Buffer
	code = RunCLI(context.Background(), root, args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// mockGenerateRunner records the request and returns a canned result.
type mockGenerateRunner struct {
	mu     sync.Mutex
	called bool
	req    GenerateRequest
	result *GenerateResult
	err    error
}

func (m *mockGenerateRunner) Generate(_ context.Context, req GenerateRequest) (*GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.called = true
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &GenerateResult{IDs: []string{"id-1"}, Alphabet: req.Alphabet.String(), Size: req.Size}, nil
}

// recordingAppender captures appended lines.
type recordingAppender struct {
	path  string
	lines []string
	err   error
}

func (r *recordingAppender) AppendLines(_ context.Context, lines []string) error {
	if r.err != nil {
		return r.err
	}
	r.lines = append(r.lines, lines...)
	return nil
}
