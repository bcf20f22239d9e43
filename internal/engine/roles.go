package engine

import (
	"github.com/KirkDiggler/imposter/internal/models"
	"github.com/KirkDiggler/imposter/internal/random"
)

// AssignRoles draws imposterCount impostors uniformly at random.
// The first imposterCount positions of a random permutation become impostors, so
// the result always holds exactly that many (clamped to [0, len(names)]).
// Roles come back in the order of names with every card unseen.
func AssignRoles(src random.Source, names []string, imposterCount int) []models.PlayerRole {
	roles := make([]models.PlayerRole, len(names))
	for i, name := range names {
		roles[i] = models.PlayerRole{PlayerName: name}
	}

	if imposterCount > len(names) {
		imposterCount = len(names)
	}
	if imposterCount <= 0 {
		return roles
	}

	order := src.Perm(len(names))
	for _, idx := range order[:imposterCount] {
		roles[idx].IsImposter = true
	}
	return roles
}

// MaxImpostersFor is the largest impostor count offered for n players:
// at least two players per impostor, never fewer than one.
func MaxImpostersFor(n int) int {
	if n/2 < 1 {
		return 1
	}
	return n / 2
}
