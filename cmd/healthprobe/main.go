/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package main is a static health probe for the traceability service image.
// It exits 0 when {contextPath}/health answers with {"status":"UP"}.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const (
	defaultPort    = "8080"
	defaultTimeout = 5 * time.Second
	statusUp       = "UP"
)

var errNotUp = errors.New("HEALTHPROBE-CHECK-NOTUP")

type probeOptions struct {
	url     string
	timeout time.Duration
	quiet   bool
}

type healthStatus struct {
	Status string `json:"status"`
}

func main() {
	options, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := probe(options, os.Stdout); err != nil {
		if !options.quiet {
			_, _ = fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}

// parseOptions reads the command line. Without -url the probe targets the
// local server using the SERVER_PORT and SERVER_CONTEXTPATH variables the
// service itself reads.
func parseOptions(args []string, getenv func(string) string) (probeOptions, error) {
	fs := flag.NewFlagSet("healthprobe", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var options probeOptions
	fs.StringVar(&options.url, "url", "", "health endpoint to probe")
	fs.DurationVar(&options.timeout, "timeout", defaultTimeout, "request timeout")
	fs.BoolVar(&options.quiet, "quiet", false, "do not print failures")
	if err := fs.Parse(args); err != nil {
		return options, fmt.Errorf("HEALTHPROBE-PARSE-ARGS: %w", err)
	}
	if options.timeout <= 0 {
		return options, errors.New("HEALTHPROBE-PARSE-INVALIDTIMEOUT")
	}
	if options.url == "" {
		options.url = localHealthURL(getenv)
	}
	return options, nil
}

func localHealthURL(getenv func(string) string) string {
	port := getenv("SERVER_PORT")
	if port == "" {
		port = defaultPort
	}
	contextPath := strings.TrimRight(getenv("SERVER_CONTEXTPATH"), "/")
	return fmt.Sprintf("http://127.0.0.1:%s%s/health", port, contextPath)
}

// probe requests the health endpoint and writes the reported status to out.
func probe(options probeOptions, out io.Writer) error {
	client := &http.Client{Timeout: options.timeout}

	resp, err := client.Get(options.url)
	if err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-REQUESTFAILED: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HEALTHPROBE-RUN-UNHEALTHYSTATUS: %d", resp.StatusCode)
	}

	var status healthStatus
	if err := jsoniter.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&status); err != nil {
		return fmt.Errorf("HEALTHPROBE-RUN-DECODE: %w", err)
	}
	if !strings.EqualFold(status.Status, statusUp) {
		return fmt.Errorf("%w: %q", errNotUp, status.Status)
	}

	_, err = fmt.Fprintln(out, status.Status)
	return err
}
