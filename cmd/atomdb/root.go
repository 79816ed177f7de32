package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opencog/atomdb/core/atomspace"
)

var (
	seedFlag string
	dbName   string
	verbose  bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atomdb",
		Short: "In-memory Atomspace atom database",
		Long: `atomdb operates a single-process, in-memory Atomspace: typed
named nodes, typed ordered or unordered links, and the indexes needed
to answer pattern and type-template queries.

Every invocation starts from an empty store. Use --seed to load a
batch of nodes and links (a JSON object with "nodes" and "links"
arrays) before the requested command runs.`,
	}

	root.PersistentFlags().StringVar(&seedFlag, "seed", "", "path to a JSON seed file of nodes/links")
	root.PersistentFlags().StringVar(&dbName, "db-name", "das", "database name label attached to log lines")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newAddNodeCmd(),
		newAddLinkCmd(),
		newGetNodeCmd(),
		newMatchCmd(),
		newMatchTypeCmd(),
	)
	return root
}

func newStore() (*atomspace.Store, error) {
	opts := []atomspace.Option{atomspace.WithDatabaseName(dbName)}
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		opts = append(opts, atomspace.WithLogger(logger.Sugar()))
	}

	s := atomspace.NewStore(atomspace.NewConfig(opts...))
	if err := loadSeed(s, seedFlag); err != nil {
		return nil, err
	}
	return s, nil
}
