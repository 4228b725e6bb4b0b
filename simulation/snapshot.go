package simulation

import "errors"

var ErrNoPlayer = errors.New("level has no player")

// Snapshot is the saved progress of the player.
type Snapshot struct {
	Level  string  `json:"level"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health float64 `json:"health"`
	Coins  int     `json:"coins"`
}

// Snapshot captures the progress of the player in the running level.
func (s *Simulation) Snapshot() (Snapshot, error) {
	b, p := s.Player()
	if b == nil || p == nil || s.Level == nil {
		return Snapshot{}, ErrNoPlayer
	}
	return Snapshot{
		Level:  s.Level.Name,
		X:      b.Pos.X,
		Y:      b.Pos.Y,
		Health: b.Health,
		Coins:  p.Coins,
	}, nil
}

// Restore loads the level of snap and puts the player back where it was.
func (s *Simulation) Restore(snap Snapshot) error {
	if err := s.LoadLevel(snap.Level); err != nil {
		return err
	}
	b, p := s.Player()
	if b == nil || p == nil {
		return ErrNoPlayer
	}
	b.Pos.X, b.Pos.Y = snap.X, snap.Y
	b.Last = b.Pos
	b.Health = snap.Health
	p.Coins = snap.Coins
	return nil
}
