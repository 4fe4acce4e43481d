package exec

import "runtime"

// Option customises Service.
type Option func(s *Service)

// WithPlatform overrides the host platform (runtime.GOOS values).
func WithPlatform(platform string) Option {
	return func(s *Service) { s.platform = platform }
}

// WithEnv sets environment variables applied to every command.
func WithEnv(env map[string]string) Option {
	return func(s *Service) { s.env = env }
}

func defaultPlatform() string {
	return runtime.GOOS
}
