package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"gapi/internal/runtime"
)

func newCallCmd(a *app) *cobra.Command {
	var (
		params   []string
		bodyPath string
		version  string
	)
	cmd := &cobra.Command{
		Use:   "call <api> <method>",
		Short: "Call a method described by the API's Discovery document",
		Long: `call resolves <method> (for example accounts.get) in the live Discovery
document of <api> and sends it with the credentials configured for that API.

Parameters are given as -p name=value and may repeat. The request body is
read from --body, a file path or "-" for stdin.

Example:
  gapi call content accounts.get -p merchantId=123 -p accountId=456`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s := a.newSession(version)
			defer s.Close()

			live, err := s.api(ctx, args[0], "")
			if err != nil {
				return err
			}
			op := live.svc.Find(args[1])
			if op == nil {
				return fmt.Errorf("%s: unknown method %q", args[0], args[1])
			}
			values, err := parseParams(params)
			if err != nil {
				return err
			}
			callArgs, err := runtime.ArgsFromStrings(op, values)
			if err != nil {
				return err
			}
			if bodyPath != "" {
				body, err := a.readBody(bodyPath)
				if err != nil {
					return err
				}
				callArgs["body"] = body
			}
			result, err := live.exec.Execute(ctx, live.svc, op, callArgs, live.callOpts...)
			if err != nil {
				return err
			}
			return writeJSON(a.out, result)
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "parameter as name=value (repeatable)")
	cmd.Flags().StringVar(&bodyPath, "body", "", `JSON request body file, or "-" for stdin`)
	cmd.Flags().StringVar(&version, "version", "", "API version for APIs without a binding")
	return cmd
}

func parseParams(params []string) (map[string][]string, error) {
	values := map[string][]string{}
	for _, p := range params {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("parameter %q: want name=value", p)
		}
		values[name] = append(values[name], value)
	}
	return values, nil
}

func (a *app) readBody(path string) (any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(a.in)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var body any
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("body is not valid JSON: %w", err)
	}
	return body, nil
}
