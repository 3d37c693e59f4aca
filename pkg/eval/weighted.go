package eval

import (
	"othello/pkg/common"
)

// WeightedEvaluationService scores a position as the sum of static
// square weights over own discs minus opponent discs, with no phase or
// mobility awareness. It is kept as a cheap baseline opponent for
// self-play comparisons.
type WeightedEvaluationService struct{}

func NewWeightedEvaluationService() *WeightedEvaluationService {
	return &WeightedEvaluationService{}
}

func (WeightedEvaluationService) Evaluate(p *common.Position, side common.Cell) int {
	var opp = side.Opponent()
	var score = 0
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			var sq = row*10 + col
			switch p.Get(sq) {
			case side:
				score += common.SquareWeights[sq]
			case opp:
				score -= common.SquareWeights[sq]
			}
		}
	}
	return score
}
