package rufty_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/rufty"
)

// Example_basic demonstrates creating notes, exporting them and importing them back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "rufty-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	app, err := rufty.New(rufty.WithExportDir(tmpDir))
	if err != nil {
		log.Fatal(err)
	}

	// 1. Add notes and complete one
	if _, err := app.Board.Create("Groceries", "milk, eggs"); err != nil {
		log.Fatal(err)
	}
	if _, err := app.Board.Create("Call Bob", ""); err != nil {
		log.Fatal(err)
	}
	if err := app.Board.Toggle(1); err != nil {
		log.Fatal(err)
	}

	// 2. Export them
	ctx := context.Background()
	path := filepath.Join(tmpDir, "notes.json")
	snapshot, err := app.Board.ExportSnapshot()
	if err != nil {
		log.Fatal(err)
	}
	if res := <-app.Runner.Export(ctx, path, snapshot); res.Err != nil {
		log.Fatal(res.Err)
	}

	// 3. Import them back after the existing ones
	res := <-app.Runner.Import(ctx, path)
	if res.Err != nil {
		log.Fatal(res.Err)
	}
	if _, err := app.Board.Import(res.Notes, rufty.MergeAppend); err != nil {
		log.Fatal(err)
	}

	for _, n := range app.Board.Notes() {
		fmt.Println(n.Title, n.Completed)
	}
	// Output:
	// Groceries false
	// Call Bob true
	// Groceries false
	// Call Bob true
}
