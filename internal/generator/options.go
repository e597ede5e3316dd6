package generator

import (
	"fmt"

	"github.com/gifnksm/numelace/internal/domain"
)

// Clue count bounds. 17 is the proven minimum for a uniquely solvable
// puzzle; anything above 80 leaves nothing to solve.
const (
	MinClues     = 17
	MaxClues     = 80
	DefaultClues = 32
)

// ErrClueRange rejects a target clue count outside [MinClues, MaxClues].
var ErrClueRange = fmt.Errorf("target clues must be between %d and %d", MinClues, MaxClues)

// normalize fills in request defaults and validates the clue target.
func normalize(req domain.GenerateRequest) (domain.GenerateRequest, error) {
	if req.TargetClues == 0 {
		req.TargetClues = DefaultClues
	}
	if req.TargetClues < MinClues || req.TargetClues > MaxClues {
		return req, fmt.Errorf("%w: got %d", ErrClueRange, req.TargetClues)
	}
	if req.MaxRemovalAttempts <= 0 {
		// One attempt per cell is a full reduce pass.
		req.MaxRemovalAttempts = domain.CellCount
	}
	return req, nil
}
