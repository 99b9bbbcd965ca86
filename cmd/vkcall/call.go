package main

//
// Implementation of the call subcommand
//

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/vkbind/vk/pkg/vkapi"
)

// errQueryNoMatch indicates that --query did not match the response.
var errQueryNoMatch = errors.New("query did not match the response")

// runCall implements the call subcommand.
func runCall(cmd *cobra.Command, options *Options, method string, args []string) error {
	params, err := makeParams(args)
	if err != nil {
		return errors.Wrap(err, method)
	}
	sess, err := newSession(options, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer sess.client.CloseIdleConnections()
	value, err := sess.call(cmd.Context(), method, params)
	if err != nil {
		return err
	}
	if options.Query != "" {
		return printQuery(cmd.OutOrStdout(), value, options.Query)
	}
	return printIndented(cmd.OutOrStdout(), value)
}

// call calls method using the configured timeout.
func (s *session) call(ctx context.Context, method string, params *vkapi.Params) (vkapi.Value, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := s.config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.client.CallMethod(ctx, method, params)
}

// printIndented prints the response as indented JSON.
func printIndented(w io.Writer, value vkapi.Value) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, value, "", "  "); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// printCompact prints the response as JSON on a single line.
func printCompact(w io.Writer, value vkapi.Value) error {
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}

// printQuery prints the part of the response matching the GJSON path. Strings
// are printed without quotes and everything else as JSON.
func printQuery(w io.Writer, value vkapi.Value, query string) error {
	result := value.Get(query)
	if !result.Exists() {
		return errors.Wrap(errQueryNoMatch, query)
	}
	if result.Type == gjson.String {
		_, err := fmt.Fprintln(w, result.String())
		return err
	}
	return printIndented(w, vkapi.Value(result.Raw))
}
