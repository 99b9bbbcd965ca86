package main

//
// Implementation of the batch subcommand
//

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/vkbind/vk/pkg/vkapi"
)

// batchCall is a call read from a batch file.
type batchCall struct {
	lineno int
	method string
	params *vkapi.Params
}

// errBatchFailed indicates that some calls failed with --keep-going.
var errBatchFailed = errors.New("some calls failed")

// parseBatchLine parses a line in the form `METHOD NAME=VALUE...` using
// shell quoting rules. It returns nil for empty lines and comments.
func parseBatchLine(lineno int, line string) (*batchCall, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}
	args, err := shlex.Split(line)
	if err != nil {
		return nil, err
	}
	if len(args) < 1 {
		return nil, nil // the line only contained a trailing comment
	}
	params, err := makeParams(args[1:])
	if err != nil {
		return nil, err
	}
	return &batchCall{lineno: lineno, method: args[0], params: params}, nil
}

// readBatchFile reads all the calls in the given file.
func readBatchFile(path string) ([]*batchCall, error) {
	filep, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer filep.Close()
	var calls []*batchCall
	scanner := bufio.NewScanner(filep)
	for lineno := 1; scanner.Scan(); lineno++ {
		call, err := parseBatchLine(lineno, scanner.Text())
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", path, lineno)
		}
		if call != nil {
			calls = append(calls, call)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, path)
	}
	return calls, nil
}

// runBatch implements the batch subcommand. Calls run sequentially.
func runBatch(cmd *cobra.Command, options *Options, path string) error {
	calls, err := readBatchFile(path)
	if err != nil {
		return err
	}
	sess, err := newSession(options, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.client.CloseIdleConnections()
	var failures int
	for _, call := range calls {
		value, err := sess.call(cmd.Context(), call.method, call.params)
		if err != nil {
			err = errors.Wrapf(err, "%s:%d: %s", path, call.lineno, call.method)
			if !options.KeepGoing {
				return err
			}
			reportError(cmd, err)
			failures++
			continue
		}
		if err := printCompact(cmd.OutOrStdout(), value); err != nil {
			return err
		}
	}
	sess.logStats()
	if failures > 0 {
		return errors.Wrap(errBatchFailed, fmt.Sprintf("%d of %d", failures, len(calls)))
	}
	return nil
}
