// schema writes the JSON schema of the backend config file, or checks that the committed one
// is up to date with the config struct
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/newsdesk/newsdesk/pkg/config"
)

type options struct {
	Check bool `long:"check" description:"fail if the schema file differs from the generated one"`
	Args  struct {
		Path string `positional-arg-name:"file" default:"schema.json"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}
	if opts.Args.Path == "" {
		opts.Args.Path = "schema.json"
	}

	data, err := generate()
	if err != nil {
		lgr.Fatalf("failed to generate schema: %v", err)
	}

	if opts.Check {
		current, err := os.ReadFile(opts.Args.Path)
		if err != nil {
			lgr.Fatalf("failed to read %s: %v", opts.Args.Path, err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			lgr.Fatalf("%s is stale, run go generate ./pkg/config", opts.Args.Path)
		}
		fmt.Printf("%s is up to date\n", opts.Args.Path)
		return
	}

	if err := os.WriteFile(opts.Args.Path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		lgr.Fatalf("failed to write schema file: %v", err)
	}
	fmt.Printf("schema written to %s\n", opts.Args.Path)
}

func generate() ([]byte, error) {
	data, err := json.MarshalIndent(config.GenerateSchema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
