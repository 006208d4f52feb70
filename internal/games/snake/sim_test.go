package snake

import (
	"testing"

	"github.com/poi5en/termfolio/internal/core"
)

// parkFood moves the food somewhere the test path will not reach.
func parkFood(s *Sim, p core.Point) {
	s.food = p
}

func TestInitialState(t *testing.T) {
	s := NewSim(20, 1)

	if got := s.Snake(); len(got) != 1 || got[0] != StartPosition {
		t.Errorf("Snake() = %v, expected [%v]", got, StartPosition)
	}
	if s.Heading() != Right {
		t.Errorf("Heading() = %v, expected %v", s.Heading(), Right)
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", s.Score())
	}
	if s.Status() != Running {
		t.Errorf("Status() = %v, expected running", s.Status())
	}
	if s.Food() == s.Head() {
		t.Error("food must not spawn on the snake")
	}
	if f := s.Food(); f.X < 0 || f.X >= 20 || f.Y < 0 || f.Y >= 20 {
		t.Errorf("food out of bounds: %v", f)
	}
}

func TestWallCollisionAfterTenTicks(t *testing.T) {
	s := NewSim(20, 1)
	parkFood(s, core.Point{X: 0, Y: 0})

	for i := 1; i <= 9; i++ {
		s.Tick()
		if s.Status() != Running {
			t.Fatalf("game over too early at tick %d", i)
		}
	}
	if s.Head() != (core.Point{X: 19, Y: 10}) {
		t.Fatalf("Head() = %v after 9 ticks, expected (19,10)", s.Head())
	}

	s.Tick()
	if s.Status() != GameOver {
		t.Fatal("expected GameOver on the 10th tick")
	}
	if s.Head() != (core.Point{X: 19, Y: 10}) {
		t.Errorf("snake must not move on the losing tick, head = %v", s.Head())
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	s := NewSim(20, 1)
	parkFood(s, core.Point{X: 11, Y: 10})

	if ate := s.Tick(); !ate {
		t.Fatal("expected to eat food at (11,10)")
	}
	if s.Score() != FoodPoints {
		t.Errorf("Score() = %d, expected %d", s.Score(), FoodPoints)
	}
	if len(s.Snake()) != 2 {
		t.Errorf("length = %d, expected 2", len(s.Snake()))
	}
	for _, seg := range s.Snake() {
		if seg == s.Food() {
			t.Error("respawned food overlaps the snake")
		}
	}

	parkFood(s, core.Point{X: 0, Y: 0})
	s.Tick()
	if s.Score() != FoodPoints || len(s.Snake()) != 2 {
		t.Errorf("non-eating tick changed score/length: %d/%d", s.Score(), len(s.Snake()))
	}
	want := []core.Point{{X: 13, Y: 10}, {X: 12, Y: 10}}
	got := s.Snake()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Snake()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestOppositeTurnIgnored(t *testing.T) {
	s := NewSim(20, 1)
	parkFood(s, core.Point{X: 0, Y: 0})

	if s.Turn(Left) {
		t.Error("Turn(Left) while heading right should be rejected")
	}
	s.Tick()
	if s.Head() != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Head() = %v, expected (11,10)", s.Head())
	}
}

func TestTurnTakesEffectNextTick(t *testing.T) {
	s := NewSim(20, 1)
	parkFood(s, core.Point{X: 0, Y: 0})

	if !s.Turn(Up) {
		t.Fatal("Turn(Up) while heading right should be accepted")
	}
	if s.Heading() != Right {
		t.Error("heading must not change before the tick")
	}
	s.Tick()
	if s.Head() != (core.Point{X: 10, Y: 9}) {
		t.Errorf("Head() = %v, expected (10,9)", s.Head())
	}
}

func TestDoubleTurnCannotReverse(t *testing.T) {
	s := NewSim(20, 1)
	parkFood(s, core.Point{X: 0, Y: 0})

	// Up then Left within one tick: Left is checked against the last move (right).
	s.Turn(Up)
	s.Turn(Left)
	s.Tick()

	if s.Status() != Running {
		t.Fatal("snake reversed into itself")
	}
	if s.Head() != (core.Point{X: 10, Y: 9}) {
		t.Errorf("Head() = %v, expected (10,9)", s.Head())
	}
}

func TestSelfCollision(t *testing.T) {
	s := NewSim(20, 1)
	s.snake = []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 4, Y: 6}, {X: 5, Y: 6}, {X: 6, Y: 6}}
	s.heading, s.pending = Right, Right
	parkFood(s, core.Point{X: 0, Y: 0})

	s.Turn(Down)
	s.Tick()
	if s.Status() != GameOver {
		t.Error("moving onto the body should end the run")
	}
	if len(s.Snake()) != 5 {
		t.Error("snake must not be mutated on collision")
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	s := NewSim(4, 1)
	s.status = GameOver
	before := s.Snake()
	s.Tick()
	if s.Snake()[0] != before[0] || s.Ticks() != 0 {
		t.Error("Tick() after GameOver should not change state")
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewSim(20, 3)
	parkFood(s, core.Point{X: 11, Y: 10})
	s.Tick()
	s.status = GameOver

	s.Reset(4)
	if s.Status() != Running || s.Score() != 0 || len(s.Snake()) != 1 || s.Head() != StartPosition {
		t.Errorf("Reset() did not rebuild the initial state: %+v", s)
	}
}

func TestSmallGridFallsBack(t *testing.T) {
	if s := NewSim(2, 1); s.Size() != DefaultGridSize {
		t.Errorf("Size() = %d, expected %d", s.Size(), DefaultGridSize)
	}
	s := NewSim(8, 1)
	if s.Head() != (core.Point{X: 4, Y: 4}) {
		t.Errorf("start outside a small board should centre, got %v", s.Head())
	}
}

func TestFullBoardEndsRun(t *testing.T) {
	s := NewSim(4, 1)
	s.snake = s.snake[:0]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			s.snake = append(s.snake, core.Point{X: x, Y: y})
		}
	}
	s.spawnFood()
	if s.Status() != GameOver {
		t.Error("no free cell should end the run")
	}
	if s.Food() != (core.Point{X: -1, Y: -1}) {
		t.Errorf("Food() = %v, expected (-1,-1)", s.Food())
	}
}

func TestFoodSpawnValidity(t *testing.T) {
	s := NewSim(6, 99)
	for i := 0; i < 200; i++ {
		s.spawnFood()
		if s.occupied(s.Food()) {
			t.Fatalf("food spawned on snake at %v", s.Food())
		}
		if !s.inBounds(s.Food()) {
			t.Fatalf("food spawned out of bounds at %v", s.Food())
		}
	}
}
