// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodKronecker is the canonical name for the Kronecker constructor.
	MethodKronecker = "Kronecker"
	// MethodKroneckerN is the canonical name for the KroneckerN constructor.
	MethodKroneckerN = "KroneckerN"
	// MethodPowerLawCluster is the canonical name for the PowerLawCluster constructor.
	MethodPowerLawCluster = "PowerLawCluster"
	// MethodInitiator tags initiator matrix validation errors.
	MethodInitiator = "Initiator"
)

//-----------------------------------------------------------------------------
// Size bounds
//-----------------------------------------------------------------------------

// MinKroneckerScale is the smallest scale accepted by Kronecker (N = 2 vertices).
const MinKroneckerScale = 1

// MaxKroneckerScale is the largest scale accepted by Kronecker.
// Edge storage is O(2^scale · edgeFactor), so this is an allocation guard.
const MaxKroneckerScale = 40

// MinKroneckerNVertices is the smallest vertex count accepted by KroneckerN.
const MinKroneckerNVertices = 2

// MinPowerLawVertices is the smallest vertex count for PowerLawCluster.
// With n < 2 no attachment parameter satisfies 1 ≤ m < n.
const MinPowerLawVertices = 2

// MinAttachment is the smallest number of edges a new vertex attaches with.
const MinAttachment = 1

// MinEdgeFactor is the smallest edgeFactor (or KroneckerN edge count).
const MinEdgeFactor = 1

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of a probability parameter.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of a probability parameter.
const MaxProbability = 1.0

// InitiatorTolerance bounds |A+B+C+D−1| for a valid initiator matrix.
const InitiatorTolerance = 1e-9

// DegenerateMass is the default threshold below which a quadrant is
// reported by Initiator.Degenerate.
const DegenerateMass = 1e-6
