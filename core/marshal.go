package core

// Text encodings keep snapshot JSON readable for the status API

func (t BallType) MarshalText() ([]byte, error)      { return []byte(t.String()), nil }
func (t PowerUpType) MarshalText() ([]byte, error)   { return []byte(t.String()), nil }
func (s Side) MarshalText() ([]byte, error)          { return []byte(s.String()), nil }
func (m Mode) MarshalText() ([]byte, error)          { return []byte(m.String()), nil }
func (d Difficulty) MarshalText() ([]byte, error)    { return []byte(d.String()), nil }
func (c ControlScheme) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (s SoundType) MarshalText() ([]byte, error)     { return []byte(s.String()), nil }
