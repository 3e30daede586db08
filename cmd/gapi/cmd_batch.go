package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gapi/internal/ndjson"
)

// batchRequest is one input line of a batch file.
type batchRequest struct {
	API     string         `json:"api"`
	Version string         `json:"version,omitempty"`
	Method  string         `json:"method"`
	Params  map[string]any `json:"params,omitempty"`
	Body    any            `json:"body,omitempty"`
}

// batchResult is one output line.
type batchResult struct {
	Line   int    `json:"line"`
	API    string `json:"api"`
	Method string `json:"method"`
	Status int    `json:"status,omitempty"`
	Body   any    `json:"body,omitempty"`
	Error  string `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Run calls listed as NDJSON",
		Long: `batch reads one call per line:

  {"api":"content","method":"accounts.get","params":{"merchantId":"1","accountId":"2"}}

and writes one result line per call. Calls run in order; a failing call is
reported on its line and the rest still run. The command fails when any call
failed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = a.in
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			s := a.newSession("")
			defer s.Close()
			reader := ndjson.NewReader[batchRequest](in)
			writer := ndjson.NewWriter(a.out)
			failed := 0
			for {
				req, line, err := reader.Next()
				if errors.Is(err, io.EOF) {
					break
				}
				if err != nil {
					return err
				}
				out := batchResult{Line: line, API: req.API, Method: req.Method}
				callArgs := map[string]any{}
				for k, v := range req.Params {
					callArgs[k] = v
				}
				if req.Body != nil {
					callArgs["body"] = req.Body
				}
				res, err := s.call(cmd.Context(), req.API, req.Version, req.Method, callArgs)
				if err != nil {
					failed++
					out.Error = a.redactor.Redact(err.Error())
				} else {
					out.Status = res.Status
					out.Body = res.Body
				}
				if err := writer.Write(out); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d call(s) failed", failed)
			}
			return nil
		},
	}
}
