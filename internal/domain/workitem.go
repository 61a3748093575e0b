package domain

// LigandExt is the accepted ligand file extension.
const LigandExt = ".pdbqt"

// DockedMarker tags output files so that discovery never re-docks a docked
// structure if the input and output directories are ever conflated.
const DockedMarker = "_docked"

// WorkItem is one discovered ligand awaiting docking. Items are enumerated
// once per run, consumed exactly once, and never persisted.
type WorkItem struct {
	// Name is the ligand base name, the filename without its extension.
	Name string

	// Path is the ligand file path as discovered.
	Path string
}

// DockedFileName returns the output structure filename for this item,
// e.g. "lig1" -> "lig1_docked.pdbqt".
func (w WorkItem) DockedFileName() string {
	return w.Name + DockedMarker + LigandExt
}
