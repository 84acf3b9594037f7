package status

// Reporter lifecycle as a process service

func (r *Reporter) Name() string           { return "status" }
func (r *Reporter) Dependencies() []string { return nil }
func (r *Reporter) Init(args ...any) error { return nil }
