package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/width"
)

// ErrInterrupted is returned when input stops before a valid answer was read.
var ErrInterrupted = errors.New("input interrupted")

// Reader reads answers line by line from an input stream and writes prompts
// and guidance to an output stream.
//
// Lines are read on a background goroutine so that a blocked read can be
// abandoned when the context is cancelled.
type Reader struct {
	out   io.Writer
	lines chan string
	done  chan struct{}
	once  sync.Once

	mu      sync.Mutex
	readErr error
}

// NewReader starts reading in and returns a Reader writing prompts to out.
// Call Close to release the reading goroutine.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		out:   out,
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go r.scan(in)
	return r
}

func (r *Reader) scan(in io.Reader) {
	defer close(r.lines)

	// No line length limit: an over-long answer is just a bad answer.
	br := bufio.NewReader(in)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			select {
			case r.lines <- strings.TrimRight(line, "\r\n"):
			case <-r.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.mu.Lock()
				r.readErr = err
				r.mu.Unlock()
			}
			return
		}
	}
}

// Close stops the background reader. It is safe to call more than once.
func (r *Reader) Close() {
	r.once.Do(func() { close(r.done) })
}

// Println writes a line of guidance to the output stream.
func (r *Reader) Println(a ...any) {
	fmt.Fprintln(r.out, a...)
}

// ReadLine writes label and blocks until a line arrives. The returned line is
// trimmed and full-width characters are folded to their narrow forms, so
// "　７０ " reads as "70".
func (r *Reader) ReadLine(ctx context.Context, label string) (string, error) {
	fmt.Fprint(r.out, label)

	// A pending line must not win over an interrupt that already happened.
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", ErrInterrupted, ctx.Err())
	case line, ok := <-r.lines:
		if !ok {
			r.mu.Lock()
			err := r.readErr
			r.mu.Unlock()
			if err != nil {
				return "", fmt.Errorf("%w: %w", ErrInterrupted, err)
			}
			return "", fmt.Errorf("%w: %w", ErrInterrupted, io.EOF)
		}
		return normalize(line), nil
	}
}

func normalize(line string) string {
	return strings.TrimSpace(width.Narrow.String(line))
}
