package scheduler

import (
	"math"
	"math/rand"
	"time"

	"github.com/Softileo/schedule-saas/internal/model"
)

// annealingCutoffIterations bounds how long the search accepts
// objective-worsening moves before settling into pure hill-climbing.
const annealingCutoffIterations = 5000

// localSearch improves an initial grid by repeatedly proposing a random
// single-cell change (assign, clear, or swap to a different admissible
// template) and accepting it when it lowers the objective, or — early on —
// with a shrinking probability when it does not, to escape local optima.
// It returns the best grid seen and its breakdown once deadline passes.
func localSearch(dm *model.DataModel, vars *Variables, initial grid, rng *rand.Rand, deadline time.Time) (grid, Breakdown) {
	best := initial.clone()
	bestScore := evaluateObjective(dm, vars, best).Total()

	current := initial
	currentScore := bestScore

	numEmployees := len(dm.Employees)
	if numEmployees == 0 || dm.Month.TotalDays == 0 {
		return best, evaluateObjective(dm, vars, best)
	}

	iteration := 0
	for {
		iteration++
		if iteration%64 == 0 && !time.Now().Before(deadline) {
			break
		}

		ei := rng.Intn(numEmployees)
		d := 1 + rng.Intn(dm.Month.TotalDays)
		options := vars.Candidates[ei][d]
		if len(options) == 0 {
			continue
		}

		candidate := current.clone()
		candidate[ei][d] = -1

		pick := rng.Intn(len(options) + 1)
		if pick < len(options) {
			newTi := options[pick]
			if !canAssign(dm, vars, candidate, ei, d, newTi) {
				continue
			}
			candidate[ei][d] = newTi
		}

		if violatesCoverage(dm, candidate, d) {
			continue
		}

		newScore := evaluateObjective(dm, vars, candidate).Total()
		if !accept(newScore, currentScore, iteration, rng) {
			continue
		}

		current = candidate
		currentScore = newScore
		if currentScore < bestScore {
			best = current.clone()
			bestScore = currentScore
		}
	}

	return best, evaluateObjective(dm, vars, best)
}

func accept(newScore, currentScore int64, iteration int, rng *rand.Rand) bool {
	if newScore <= currentScore {
		return true
	}
	if iteration >= annealingCutoffIterations {
		return false
	}
	temp := annealingTemperature(iteration)
	if temp <= 0 {
		return false
	}
	delta := float64(newScore - currentScore)
	return rng.Float64() < math.Exp(-delta/temp)
}

func annealingTemperature(iteration int) float64 {
	frac := 1 - float64(iteration)/float64(annealingCutoffIterations)
	if frac < 0 {
		return 0
	}
	return 500_000 * frac
}
