package mino

import (
	"testing"
)

func newTestController() (*Matrix, *Controller) {
	m := NewMatrix(DefaultWidth, DefaultHeight)
	c := NewController(m)
	c.Spawn(ShapeI, BlockBlue)

	return m, c
}

func TestControllerSpawn(t *testing.T) {
	_, c := newTestController()

	if c.P.Point != (Point{5, -4}) {
		t.Errorf("unexpected spawn point %s", c.P.Point)
	}

	c.P.Template = c.P.Template.Rotate()
	c.P.X = 0
	c.Spawn(ShapeT, BlockRed)
	if c.P.Template != ShapeT.Template() || c.P.Point != SpawnPoint(DefaultWidth) || c.P.Color != BlockRed {
		t.Errorf("spawn did not reset the piece: %s", c.P)
	}

	c.Reset()
	if c.P.Shape != ShapeI || c.P.Color != BlockRed || c.P.Point != SpawnPoint(DefaultWidth) {
		t.Errorf("reset did not return to an I piece at the spawn point: %s", c.P)
	}
}

func TestControllerDrop(t *testing.T) {
	m, c := newTestController()

	// The lowest tile of a spawned I piece is on row -3.
	for i := 0; i < 22; i++ {
		if !c.CanMove(DirectionDown) {
			t.Fatalf("failed to move piece down on iteration %d", i)
		}
		c.Move(DirectionDown)
	}

	before := c.P.Point
	if c.CanMove(DirectionDown) {
		t.Fatal("expected piece resting on the floor to be unable to move down")
	}
	if c.P.Point != before {
		t.Errorf("checking a move changed the piece position to %s", c.P.Point)
	}
	if before != (Point{5, 18}) {
		t.Errorf("unexpected resting position %s", before)
	}

	m.MapPiece(c.P)
	if !m.LockPiece(c.P) {
		t.Error("expected landed piece to lock inside the board")
	}
	if cleared := m.ClearFilled(); cleared != 0 {
		t.Errorf("expected no lines cleared by a single column, got %d", cleared)
	}
}

func TestControllerWalls(t *testing.T) {
	_, c := newTestController()

	for i := 0; i < 5; i++ {
		if !c.CanMove(DirectionLeft) {
			t.Fatalf("failed to move piece left on iteration %d", i)
		}
		c.Move(DirectionLeft)
	}
	if c.CanMove(DirectionLeft) {
		t.Error("expected left wall to stop the piece")
	}

	for i := 0; i < 9; i++ {
		if !c.CanMove(DirectionRight) {
			t.Fatalf("failed to move piece right on iteration %d", i)
		}
		c.Move(DirectionRight)
	}
	if c.CanMove(DirectionRight) {
		t.Error("expected right wall to stop the piece")
	}

	if c.CanMove(Direction(99)) {
		t.Error("expected unknown direction to be rejected")
	}
}

func TestControllerCollision(t *testing.T) {
	m, c := newTestController()

	m.SetBlock(4, 10, BlockGreen)
	c.P.Point = Point{5, 10}
	if c.CanMove(DirectionLeft) {
		t.Error("expected locked block to stop the piece moving left")
	}
	if !c.CanMove(DirectionRight) {
		t.Error("expected piece to move right")
	}

	m.Reset()
	m.SetBlock(6, 11, BlockGreen)
	if c.CanMove(DirectionRight) {
		t.Error("expected locked block to stop the piece moving right")
	}

	// Tiles above the board only collide once on it.
	m.Reset()
	c.P.Point = Point{5, -1}
	m.SetBlock(4, 1, BlockGreen)
	if !c.CanMove(DirectionLeft) {
		t.Error("expected piece partially above the board to move left past a lower block")
	}
	m.SetBlock(4, 0, BlockGreen)
	if c.CanMove(DirectionLeft) {
		t.Error("expected visible tile to collide when moving left")
	}

	m.Reset()
	c.P.Point = Point{5, -2}
	m.SetBlock(5, 0, BlockGreen)
	if c.CanMove(DirectionDown) {
		t.Error("expected piece entering the board to land on the stack")
	}
}

func TestControllerRotate(t *testing.T) {
	_, c := newTestController()

	c.Spawn(ShapeT, BlockPurple)
	c.P.Point = Point{5, 10}
	for i := 0; i < 4; i++ {
		if !c.Rotate() {
			t.Fatalf("failed to rotate piece on iteration %d", i)
		}
		if c.P.Point != (Point{5, 10}) {
			t.Errorf("rotation in open space moved the piece to %s", c.P.Point)
		}
	}
	if c.P.Template != ShapeT.Template() {
		t.Error("four rotations did not restore the template")
	}

	c.Spawn(ShapeT, BlockPurple)
	if !c.Rotate() {
		t.Error("failed to rotate piece above the board")
	}
}

func TestControllerWallKick(t *testing.T) {
	_, c := newTestController()

	c.P.Point = Point{0, 10}
	if !c.Rotate() {
		t.Fatal("failed to rotate piece for right wall kick")
	}
	if c.P.Point != (Point{1, 10}) {
		t.Errorf("expected piece to be kicked right to column 1, got %s", c.P.Point)
	}
	if !c.ValidPosition() {
		t.Error("kicked piece is in an invalid position")
	}

	c.Spawn(ShapeI, BlockBlue)
	c.P.Point = Point{9, 10}
	if c.Rotate() {
		t.Fatal("expected rotation against the right wall to fail")
	}
	if c.P.Template != ShapeI.Template() {
		t.Errorf("failed rotation did not restore the template:\n%s", c.P.Template.Render())
	}
	if c.P.Point != (Point{9, 10}) {
		t.Errorf("failed rotation moved the piece to %s", c.P.Point)
	}
}

func TestControllerRotateBlocked(t *testing.T) {
	m, c := newTestController()

	c.P.Point = Point{5, 10}
	for y := 8; y <= 12; y++ {
		for x := 0; x < m.W; x++ {
			if x != 5 {
				m.SetBlock(x, y, BlockOrange)
			}
		}
	}

	if c.Rotate() {
		t.Error("expected rotation inside a shaft to fail")
	}
	if c.P.Template != ShapeI.Template() || c.P.Point != (Point{5, 10}) {
		t.Errorf("failed rotation changed the piece: %s", c.P)
	}
}
