package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/opencog/atomdb/core/atomspace"
)

// seedFile is the on-disk shape a --seed file carries: the nodes and
// links to load into a fresh Store before the requested command runs.
// The store has no persistence, so every invocation of this binary
// starts empty and rebuilds whatever state it needs from the seed
// file.
type seedFile struct {
	Nodes []map[string]any `json:"nodes"`
	Links []map[string]any `json:"links"`
}

func loadSeed(s *atomspace.Store, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	var seed seedFile
	if err := json.NewDecoder(f).Decode(&seed); err != nil {
		return fmt.Errorf("decode seed file: %w", err)
	}

	for _, n := range seed.Nodes {
		if _, err := s.AddNode(n); err != nil {
			return fmt.Errorf("seed add-node: %w", err)
		}
	}
	for _, l := range seed.Links {
		if _, err := s.AddLinkMap(l); err != nil {
			return fmt.Errorf("seed add-link: %w", err)
		}
	}
	return nil
}

// readJSONArg decodes a JSON object either from path (if non-empty) or
// from stdin, mirroring how CLI subcommands accept a spec body.
func readJSONArg(path string, out any) error {
	var r io.Reader
	if path == "" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return json.NewDecoder(r).Decode(out)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
