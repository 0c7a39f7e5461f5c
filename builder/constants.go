// Package builder defines shared constants used by map constructors.
package builder

//-----------------------------------------------------------------------------
// Constructor Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRoom is the canonical name for the Room constructor.
	MethodRoom = "Room"
	// MethodBorder is the canonical name for the Border constructor.
	MethodBorder = "Border"
	// MethodRandomRocks is the canonical name for the RandomRocks constructor.
	MethodRandomRocks = "RandomRocks"
	// MethodNoiseRocks is the canonical name for the NoiseRocks constructor.
	MethodNoiseRocks = "NoiseRocks"
	// MethodRoadEdges is the canonical name for the RoadEdges constructor.
	MethodRoadEdges = "RoadEdges"
	// MethodScatterPawns is the canonical name for the ScatterPawns constructor.
	MethodScatterPawns = "ScatterPawns"
	// MethodScatterThings is the canonical name for the ScatterThings constructor.
	MethodScatterThings = "ScatterThings"
	// MethodLayer is the canonical name for rectangle layer constructors.
	MethodLayer = "Layer"
)

//-----------------------------------------------------------------------------
// Validation Limits
//-----------------------------------------------------------------------------

const (
	// MinRoomDim is the smallest room side, walls included (one interior cell).
	MinRoomDim = 3
	// MinProbability and MaxProbability bound RandomRocks density.
	MinProbability = 0.0
	MaxProbability = 1.0
	// maxPlacementAttempts bounds random placement per item before failing.
	maxPlacementAttempts = 1000
)
