// Package shell runs external package manager tools.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/bale/internal/core/domain"
	"go.trai.ch/bale/internal/core/ports"
)

// diagnosticLines bounds how much captured stderr is reported on failure.
const diagnosticLines = 20

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner streaming child output to the process streams.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// WithStreams redirects the live child output. Nil writers discard.
func (r *Runner) WithStreams(stdout, stderr io.Writer) *Runner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes cmd and returns its captured stdout.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) (string, error) {
	r.logger.Info("> " + cmd.String())

	var captured, diagnostics bytes.Buffer
	stdoutLive := newRedactWriter(r.stdout, cmd)
	stderrLive := newRedactWriter(r.stderr, cmd)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // package manager invocation built by strategies
	c.Stdout = io.MultiWriter(stdoutLive, &captured)
	c.Stderr = io.MultiWriter(stderrLive, &diagnostics)
	if cmd.Stdin != "" {
		c.Stdin = strings.NewReader(cmd.Stdin)
	}

	err := c.Run()
	_ = stdoutLive.Close()
	_ = stderrLive.Close()

	if err != nil {
		return captured.String(), toolError(ctx, cmd, err, diagnostics.String())
	}

	return captured.String(), nil
}

func toolError(ctx context.Context, cmd domain.Command, err error, stderr string) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.NewExternalToolError(cmd, -1, "interrupted", ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.NewExternalToolError(cmd, exitErr.ExitCode(), tail(stderr, diagnosticLines), err)
	}

	// The process never started.
	return domain.NewExternalToolError(cmd, -1, err.Error(), err)
}

// tail returns the last n non-empty lines of s.
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\r\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// redactWriter forwards complete lines with the command's secrets masked.
type redactWriter struct {
	mu  sync.Mutex
	out io.Writer
	cmd domain.Command
	buf []byte
}

func newRedactWriter(out io.Writer, cmd domain.Command) *redactWriter {
	return &redactWriter{out: out, cmd: cmd}
}

func (w *redactWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		if err := w.writeLine(w.buf[:i+1]); err != nil {
			return len(p), err
		}
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *redactWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) == 0 {
		return nil
	}
	err := w.writeLine(w.buf)
	w.buf = nil
	return err
}

func (w *redactWriter) writeLine(line []byte) error {
	_, err := io.WriteString(w.out, w.cmd.Redact(string(line)))
	return err
}
