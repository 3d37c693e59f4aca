package eval

import (
	"math/rand"
	"testing"

	"othello/pkg/common"
)

func mustPosition(t *testing.T, diagram string) common.Position {
	t.Helper()
	var p, err = common.NewPositionFromString(diagram)
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func playoutPosition(seed int64, ply int) common.Position {
	var rnd = rand.New(rand.NewSource(seed))
	var p = common.NewPosition()
	var side = common.Black
	for i := 0; i < ply && !p.GameOver(); i++ {
		var moves = p.LegalMoves(side)
		if len(moves) == 0 {
			side = side.Opponent()
			continue
		}
		var undo common.Undo
		p.MakeMove(moves[rnd.Intn(len(moves))], side, &undo)
		side = side.Opponent()
	}
	return p
}

func TestInitialPositionIsBalanced(t *testing.T) {
	var service = NewEvaluationService()
	var p = common.NewPosition()
	if score := service.Evaluate(&p, common.Black); score != 0 {
		t.Fatalf("initial score = %d, want 0", score)
	}
}

func TestCornerBalance(t *testing.T) {
	var p = mustPosition(t, `
		X.......
		........
		........
		........
		........
		........
		........
		.......O
	`)
	if got := cornerBalance(&p, common.Black); got != 0 {
		t.Errorf("black balance = %d, want 0", got)
	}
	var q = mustPosition(t, `
		X.......
		........
		........
		........
		........
		........
		........
		........
	`)
	if got := cornerBalance(&q, common.Black); got != 1 {
		t.Errorf("black balance = %d, want 1", got)
	}
	if got := cornerBalance(&q, common.White); got != -1 {
		t.Errorf("white balance = %d, want -1", got)
	}
}

func TestDangerBalance(t *testing.T) {
	// a disc beside an uncontrolled corner is a liability
	var exposed = mustPosition(t, `
		........
		.X......
		........
		........
		........
		........
		........
		........
	`)
	if got := dangerBalance(&exposed, common.Black); got != -1 {
		t.Errorf("black balance = %d, want -1", got)
	}
	if got := dangerBalance(&exposed, common.White); got != 1 {
		t.Errorf("white balance = %d, want 1", got)
	}

	// owning the corner removes the penalty
	var anchored = mustPosition(t, `
		X.......
		.X......
		........
		........
		........
		........
		........
		........
	`)
	if got := dangerBalance(&anchored, common.Black); got != 0 {
		t.Errorf("anchored black balance = %d, want 0", got)
	}
	if got := dangerBalance(&anchored, common.White); got != 0 {
		t.Errorf("anchored white balance = %d, want 0", got)
	}
}

func TestEdgeBalance(t *testing.T) {
	var p = mustPosition(t, `
		...X....
		........
		........
		........
		........
		........
		........
		........
	`)
	if got := edgeBalance(&p, common.Black); got != 1 {
		t.Errorf("black balance = %d, want 1", got)
	}
	if got := edgeBalance(&p, common.White); got != -1 {
		t.Errorf("white balance = %d, want -1", got)
	}
}

func TestIsStable(t *testing.T) {
	var p = mustPosition(t, `
		XXX.....
		........
		........
		...X....
		........
		........
		........
		........
	`)
	for _, sq := range []int{11, 12, 13} {
		if !isStable(&p, sq) {
			t.Errorf("square %d must be stable", sq)
		}
	}
	if isStable(&p, 44) {
		t.Error("lone interior disc must not be stable")
	}

	// a gap in the run to the edge breaks stability
	var gapped = mustPosition(t, `
		X.X.....
		........
		........
		........
		........
		........
		........
		........
	`)
	if isStable(&gapped, 13) {
		t.Error("disc behind a gap must not be stable")
	}
}

// Midgame weights carry no parity term, so the evaluation must be an
// exact zero-sum between the two sides.
func TestMidgameAntisymmetry(t *testing.T) {
	var service = NewEvaluationService()
	for seed := int64(1); seed <= 5; seed++ {
		var p = playoutPosition(seed, 20)
		if common.GamePhase(p.Occupied()) != common.Midgame {
			continue
		}
		var black = service.Evaluate(&p, common.Black)
		var white = service.Evaluate(&p, common.White)
		if black != -white {
			t.Errorf("seed %d: black %d, white %d\n%v", seed, black, white, p.String())
		}
	}
}

// In the endgame the parity bonus goes to whichever side is asked, so
// the two sides' scores sum to plus or minus twice the parity weight.
func TestEndgameParity(t *testing.T) {
	var service = NewEvaluationService()
	for seed := int64(1); seed <= 5; seed++ {
		var p = playoutPosition(seed, 50)
		if common.GamePhase(p.Occupied()) != common.Endgame {
			continue
		}
		var sum = service.Evaluate(&p, common.Black) + service.Evaluate(&p, common.White)
		var want = 2 * endgameWeights.Parity
		if p.EmptyCount()%2 == 0 {
			want = -want
		}
		if sum != want {
			t.Errorf("seed %d: score sum = %d, want %d (%d empties)",
				seed, sum, want, p.EmptyCount())
		}
	}
}

func TestWeightedEvaluation(t *testing.T) {
	var service = NewWeightedEvaluationService()
	var p = common.NewPosition()
	if score := service.Evaluate(&p, common.Black); score != 0 {
		t.Fatalf("initial score = %d, want 0", score)
	}
	var corner = mustPosition(t, `
		X.......
		........
		........
		........
		........
		........
		........
		........
	`)
	var black = service.Evaluate(&corner, common.Black)
	if black != common.SquareWeights[11] {
		t.Fatalf("corner score = %d, want %d", black, common.SquareWeights[11])
	}
	if white := service.Evaluate(&corner, common.White); white != -black {
		t.Fatalf("white score = %d, want %d", white, -black)
	}
	for seed := int64(1); seed <= 5; seed++ {
		var q = playoutPosition(seed, 30)
		if service.Evaluate(&q, common.Black) != -service.Evaluate(&q, common.White) {
			t.Errorf("seed %d: weighted evaluation not zero-sum", seed)
		}
	}
}
