// Package results decodes modal analysis results into per-mode displacement
// fields and animation frames.
package results

// Modal results layout of a MED results container. Format drift is handled
// here and nowhere else.
const (
	// ModalResultsGroup holds one subgroup per mode.
	ModalResultsGroup = "CHA/modes___DEPL"
	// DisplacementPath is the nodal displacement dataset, relative to a mode.
	DisplacementPath = "NOE/MED_NO_PROFILE_INTERNAL/CO"
	// ModeNumberAttr and FrequencyAttr are scalar attributes of a mode.
	ModeNumberAttr = "NDT"
	FrequencyAttr  = "PDT"

	// DOFsPerNode is the row width of the displacement dataset: three
	// translations followed by three rotations.
	DOFsPerNode = 6
	// Columns [DroppedDOFsFrom, DroppedDOFsTo) are discarded, leaving the
	// three components used for translational animation.
	DroppedDOFsFrom = 2
	DroppedDOFsTo   = 5
)

// Mesh layout of a MED container.
const (
	MeshGroup          = "ENS_MAA"
	SpaceDimensionAttr = "ESP"
	CoordinatesPath    = "NOE/COO"
	NodeNumbersPath    = "NOE/NUM"
	CellsGroup         = "MAI"
	ConnectivityName   = "NOD"
	CellNumbersName    = "NUM"
)
