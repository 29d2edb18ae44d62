// Package rufty is the Composition Root for the rufty note board.
//
// It connects the in-memory note sequence (Domain Layer) with the list view
// binding, the file archive and the background export/import runner, using
// the Hexagonal Architecture pattern.
//
// Features:
//
//   - **Ordered notes**: a title, a body and a completion flag per note, kept in insertion order.
//   - **Index correspondence**: every mutation is mirrored to the list view as a precise change.
//   - **Hit testing**: clicks resolve to the checkbox or the body of a row.
//   - **Export/Import**: JSON, YAML and CSV files, written atomically off the UI thread.
//
// Usage:
//
//	app, err := rufty.New(
//		rufty.WithLogger(logger),
//		rufty.WithExportFormat("yaml"),
//	)
//
//	// Add a note
//	idx, err := app.Board.Create("Groceries", "milk, eggs")
//
//	// Export it in the background
//	snapshot, _ := app.Board.ExportSnapshot()
//	res := <-app.Runner.Export(ctx, app.ExportPath(), snapshot)
package rufty
