// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bicep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"

	"github.com/go-logr/logr"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

// DetermineCLIPath tries to parse `az bicep version` output to find the path to the `bicep` CLI path, and falls back
// to looking at the system $PATH. This roughly mirrors what the `az` CLI does as well, without reading & parsing the
// `az` config files:
// https://github.com/Azure/azure-cli/blob/a55543015da9e2f554a6a09816794b5315e3ce8b/src/azure-cli/azure/cli/command_modules/resource/_bicep.py#L68-L80
func DetermineCLIPath(ctx context.Context) (string, error) {
	fromAzCLI, azErr := parseAzCliOutputForPath(ctx)
	if azErr != nil {
		fromSystem, systemErr := exec.LookPath("bicep")
		if systemErr != nil {
			return "", fmt.Errorf("failed to find bicep binary, system lookup failed with %w, `az` CLI parsing failed with %w", systemErr, azErr)
		}
		return fromSystem, nil
	}
	return fromAzCLI, nil
}

var bicepPathPattern = regexp.MustCompile(`cli\.azure\.cli\.command_modules\.resource\._bicep: Bicep CLI installation path: (.+)`)

// parseAzCliOutputForPath uses an ugly hack to parse the debug output of `az bicep version` to find the path to the bicep CLI.
func parseAzCliOutputForPath(ctx context.Context) (string, error) {
	output, err := exec.CommandContext(ctx, "az", "bicep", "version", "--debug").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to determine bicep CLI path: %s %w", string(output), err)
	}
	matches := bicepPathPattern.FindSubmatch(output)
	if len(matches) != 2 {
		return "", fmt.Errorf("failed to determine bicep CLI path: unexpected output: %s", string(output))
	}
	return string(matches[1]), nil
}

// StartJSONRPCServer starts a bicep JSON-RPC server and returns a compiler client connected to it.
// The server is stopped when the context is cancelled.
func StartJSONRPCServer(ctx context.Context, logger logr.Logger, debug bool) (*Compiler, error) {
	bicepCLIPath, err := DetermineCLIPath(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine bicep CLI path: %w", err)
	}
	logger.V(4).Info("got bicep CLI path", "path", bicepCLIPath)

	cmd := exec.CommandContext(ctx, bicepCLIPath, "jsonrpc", "--stdio")

	inputReader, inputWriter := io.Pipe()
	outputReader, outputWriter := io.Pipe()

	var input io.Writer = inputWriter
	var output io.Reader = outputReader
	if debug {
		input = io.MultiWriter(inputWriter, os.Stdout)
		output = io.TeeReader(outputReader, os.Stdout)
	}

	cmd.Stdin = inputReader
	cmd.Stdout = outputWriter
	rwc := &stdioReadWriteCloser{
		Reader: output,
		Writer: input,
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start bicep JSON-RPC server: %w", err)
	}
	logger.V(4).Info("started bicep JSON-RPC server", "pid", cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			logger.Error(err, "bicep JSON-RPC server exited with error")
		}
	}()
	return NewCompiler(ctx, rwc, debug), nil
}

type stdioReadWriteCloser struct {
	io.Reader
	io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.Reader.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.Writer.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

var _ io.ReadWriteCloser = (*stdioReadWriteCloser)(nil)

func NewCompiler(ctx context.Context, rwc io.ReadWriteCloser, debug bool) *Compiler {
	stream := jsonrpc2.NewStream(rwc)
	if debug {
		stream = protocol.LoggingStream(stream, os.Stdout)
	}
	compiler := &Compiler{
		conn: jsonrpc2.NewConn(stream),
	}
	compiler.conn.Go(ctx, nil)
	return compiler
}

// Compiler drives the bicep CLI over JSON-RPC to turn .bicep and .bicepparam
// files into ARM template and parameter documents.
type Compiler struct {
	conn jsonrpc2.Conn
}

type compileParams struct {
	Path string `json:"path"`
}

type compileResult struct {
	Success     bool         `json:"success"`
	Contents    string       `json:"contents"`
	Diagnostics []diagnostic `json:"diagnostics"`
}

type compileParamsParams struct {
	Path               string         `json:"path"`
	ParameterOverrides map[string]any `json:"parameterOverrides"`
}

type compileParamsResult struct {
	Success     bool         `json:"success"`
	Template    string       `json:"template"`
	Parameters  string       `json:"parameters"`
	Diagnostics []diagnostic `json:"diagnostics"`
}

type diagnostic struct {
	Source  string `json:"source"`
	Level   string `json:"level"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func diagnosticError(base error, diagnostics []diagnostic) error {
	err := base
	for _, d := range diagnostics {
		err = errors.Join(err, fmt.Errorf("source: '%s', level: '%s', code: '%s', message: '%s'", d.Source, d.Level, d.Code, d.Message))
	}
	return err
}

// Build compiles a .bicep template at `path` into an ARM template document.
func (c *Compiler) Build(ctx context.Context, path string) (map[string]any, error) {
	result := &compileResult{}
	if err := protocol.Call(ctx, c.conn, "bicep/compile", compileParams{Path: path}, result); err != nil {
		return nil, fmt.Errorf("failed to call bicep/compile: %w", err)
	}
	if !result.Success {
		return nil, diagnosticError(fmt.Errorf("failed to compile %s", path), result.Diagnostics)
	}
	var template map[string]any
	if err := json.Unmarshal([]byte(result.Contents), &template); err != nil {
		return nil, fmt.Errorf("failed to unmarshal compiled template: %w", err)
	}
	return template, nil
}

// BuildParams compiles a .bicepparam file at `path` into ARM template and
// parameter documents, overriding the parameters named in `overrides`. The
// generated resource names are injected this way, so the checked-in parameter
// files never carry hand-maintained names.
func (c *Compiler) BuildParams(ctx context.Context, path string, overrides map[string]any) (map[string]any, map[string]any, error) {
	if overrides == nil {
		overrides = make(map[string]any)
	}
	result := &compileParamsResult{}
	if err := protocol.Call(ctx, c.conn, "bicep/compileParams", compileParamsParams{Path: path, ParameterOverrides: overrides}, result); err != nil {
		return nil, nil, fmt.Errorf("failed to call bicep/compileParams: %w", err)
	}
	if !result.Success {
		return nil, nil, diagnosticError(fmt.Errorf("failed to build params from %s", path), result.Diagnostics)
	}
	var template map[string]any
	if err := json.Unmarshal([]byte(result.Template), &template); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}
	var parameters struct {
		Parameters map[string]any `json:"parameters"`
	}
	if err := json.Unmarshal([]byte(result.Parameters), &parameters); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal parameters: %w", err)
	}
	return template, parameters.Parameters, nil
}
