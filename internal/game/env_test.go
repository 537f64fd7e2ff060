package game

import "testing"

func TestEnvReset(t *testing.T) {
	env, err := NewEnv(DefaultOptions(classic))
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}

	obs := env.Reset()
	expected := Observation{12, 7, 3, 7}
	if obs != expected {
		t.Errorf("Reset() = %v, expected %v", obs, expected)
	}
	if !env.IsActive() {
		t.Error("IsActive() should be true after Reset()")
	}
}

func TestEnvStep(t *testing.T) {
	env, err := NewEnv(DefaultOptions(classic))
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}
	env.Reset()

	obs, reward := env.Step(DirRight)
	if obs == nil {
		t.Fatal("Step() returned nil observation for a running episode")
	}
	if *obs != (Observation{12, 7, 4, 7}) {
		t.Errorf("Step() observation = %v", *obs)
	}
	if reward != RewardTick {
		t.Errorf("Step() reward = %v, expected %v", reward, RewardTick)
	}
}

func TestEnvEpisodeEndsAtWall(t *testing.T) {
	env, err := NewEnv(DefaultOptions(classic))
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}
	env.Reset()

	var (
		obs    *Observation
		reward float64
		total  float64
	)
	for i := 0; i < 100; i++ {
		obs, reward = env.Step(DirRight)
		total += reward
		if obs == nil {
			break
		}
	}

	if obs != nil || env.IsActive() {
		t.Fatal("episode should end after running into the right wall")
	}
	if reward != RewardTick+RewardDeath {
		t.Errorf("final reward = %v, expected %v", reward, RewardTick+RewardDeath)
	}
	// The opening apple lies on the path
	if env.Score() < 1 {
		t.Errorf("Score() = %d, expected at least 1", env.Score())
	}
	if total <= RewardDeath {
		t.Errorf("total reward %v should include the apple bonus", total)
	}

	// Reset starts over
	if first := env.Reset(); first[2] != 3 || !env.IsActive() {
		t.Errorf("Reset() = %v, expected a fresh episode", first)
	}
}

func TestEnvWinReward(t *testing.T) {
	env, err := NewEnv(Options{Grid: Grid{Width: 2, Height: 2}, Head: Pt(0, 0), TailLength: 1, Direction: DirDown})
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}
	env.Reset()

	// Three cells taken with growth pending, apple on the last free cell
	env.game.snake = &Snake{
		body:      []Point{Pt(0, 1), Pt(1, 1), Pt(1, 0)},
		direction: DirLeft,
		growing:   true,
	}
	env.game.apple = NewApple(Pt(0, 0))

	obs, reward := env.Step(DirDown)
	if obs != nil {
		t.Errorf("Step() observation = %v, expected nil at the end of the episode", *obs)
	}
	if want := RewardTick + RewardGrow + RewardWin; reward != want {
		t.Errorf("Step() reward = %v, expected %v", reward, want)
	}
	if env.IsActive() {
		t.Error("IsActive() should be false once the board is full")
	}
	if s := env.Snapshot(); s.State != StateWon || s.Reason != ReasonBoardFull {
		t.Errorf("state = %v/%q, expected won/board_full", s.State, s.Reason)
	}
}

func TestEnvActions(t *testing.T) {
	env, err := NewEnv(DefaultOptions(classic))
	if err != nil {
		t.Fatalf("NewEnv() failed: %v", err)
	}

	actions := env.Actions()
	if len(actions) != 4 {
		t.Fatalf("Actions() returned %d actions, expected 4", len(actions))
	}
	for i := 0; i < 50; i++ {
		a := env.RandomAction()
		if !a.Valid() {
			t.Fatalf("RandomAction() = %v, not a valid direction", a)
		}
	}
}
