package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"family-tree/backend/internal/constants"
	"family-tree/backend/internal/graph"
	"family-tree/backend/internal/seed"
	"family-tree/backend/internal/tree"
	"family-tree/backend/pkg/logger"
)

func main() {
	file := flag.String("file", constants.DefaultScenarioFile, "YAML scenario to apply")
	env := flag.String("env", constants.EnvDevelopment, "Logging environment (development, production, test)")
	priority := flag.Bool("priority", false, "List each member's relationships by priority instead of insertion order")
	flag.Parse()

	// Initialize logger
	if err := logger.Init(*env); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	log := logger.Get()
	log.Info("Applying family scenario...", zap.String("file", *file))

	familyTree, err := run(*file, log)
	if err != nil {
		log.Fatal("Failed to apply scenario", zap.Error(err))
	}

	if err := printTree(os.Stdout, familyTree, *priority); err != nil {
		log.Fatal("Failed to print tree", zap.Error(err))
	}
	log.Info("Scenario applied successfully", zap.Int("members", familyTree.Len()))
}

func run(path string, log *zap.Logger) (*tree.Tree, error) {
	scenario, err := seed.LoadFile(path)
	if err != nil {
		return nil, err
	}

	familyTree := tree.New(log.Named("tree"))
	if _, err := seed.Apply(familyTree, scenario, log.Named("seed")); err != nil {
		return nil, err
	}
	return familyTree, nil
}

// printTree writes one block per member followed by its relationships
func printTree(w io.Writer, t *tree.Tree, byPriority bool) error {
	for _, p := range t.People() {
		header := fmt.Sprintf("%d. %s (%s)", p.ID, p.FullName(), p.Gender)
		if p.IsInstitutional() {
			header += fmt.Sprintf(" cohort %d", *p.Cohort)
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}

		edges, err := t.Edges(p.ID)
		if err != nil {
			return err
		}
		if byPriority {
			edges = graph.SortEdges(edges)
		}
		for _, e := range edges {
			if _, err := fmt.Fprintf(w, "   %-13s %s (#%d)\n", e.Kind, e.Target.FullName(), e.Target.ID); err != nil {
				return err
			}
		}
	}
	return nil
}
