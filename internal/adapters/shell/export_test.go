package shell

// WithEnviron replaces the inherited environment of r.
func (r *Runner) WithEnviron(env []string) *Runner {
	r.environ = func() []string { return env }
	return r
}
