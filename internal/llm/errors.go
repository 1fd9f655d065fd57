package llm

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
)

// Error taxonomy surfaced to callers. Neither kind is retried here; the
// caller decides how to report them.
var (
	// ErrConnection means the model server could not be reached.
	ErrConnection = errors.New("model server unreachable")
	// ErrModelNotFound means the server is up but the requested model is
	// not pulled/loaded.
	ErrModelNotFound = errors.New("model not found")
)

// classifyErr maps transport and server errors onto the package sentinels,
// keeping the original error in the chain. Unrecognized errors pass through
// unchanged.
func classifyErr(err error, model string) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	var opErr *net.OpError
	if errors.As(err, &urlErr) || errors.As(err, &opErr) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		strings.Contains(err.Error(), "connection refused") {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}

	// Ollama reports a missing model as a 404 with a "model ... not found"
	// message; match on the message since the status error type is private
	// to the transport.
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "not found") && (model == "" || strings.Contains(msg, strings.ToLower(model)) || strings.Contains(msg, "model")) {
		return fmt.Errorf("%w (%s): %v", ErrModelNotFound, model, err)
	}

	return err
}
