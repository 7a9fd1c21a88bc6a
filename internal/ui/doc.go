package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// interactions to the catalog service and renders the record list, the info
// view, the URL/search controls, and the help dialog. Background refreshes
// never block the render loop; their completions are applied via fyne.Do.
