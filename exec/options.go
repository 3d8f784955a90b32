package exec

import "time"

// config separates global settings (set at creation time) from local
// settings (set for the next run only).
type config struct {
	globalEnv         map[string]string
	globalDir         string
	globalInheritEnv  bool
	globalPassthrough bool

	localEnv         map[string]string
	localDir         string
	localInheritEnv  *bool
	localPassthrough *bool
	localVerbatim    bool
	localTimeout     time.Duration
}

func newConfig() *config {
	return &config{
		globalEnv: make(map[string]string),
		localEnv:  make(map[string]string),
	}
}

// clone copies global settings only; local settings never carry over.
func (c *config) clone() *config {
	clone := newConfig()
	clone.globalDir = c.globalDir
	clone.globalInheritEnv = c.globalInheritEnv
	clone.globalPassthrough = c.globalPassthrough
	for k, v := range c.globalEnv {
		clone.globalEnv[k] = v
	}
	return clone
}

// effectiveEnv merges global and local variables, local winning.
func (c *config) effectiveEnv() map[string]string {
	env := make(map[string]string, len(c.globalEnv)+len(c.localEnv))
	for k, v := range c.globalEnv {
		env[k] = v
	}
	for k, v := range c.localEnv {
		env[k] = v
	}
	return env
}

func (c *config) effectiveDir() string {
	if c.localDir != "" {
		return c.localDir
	}
	return c.globalDir
}

func (c *config) effectiveInheritEnv() bool {
	if c.localInheritEnv != nil {
		return *c.localInheritEnv
	}
	return c.globalInheritEnv
}

func (c *config) effectivePassthrough() bool {
	if c.localPassthrough != nil {
		return *c.localPassthrough
	}
	return c.globalPassthrough
}

// resetLocal clears local settings after each Run.
func (c *config) resetLocal() {
	c.localEnv = make(map[string]string)
	c.localDir = ""
	c.localInheritEnv = nil
	c.localPassthrough = nil
	c.localVerbatim = false
	c.localTimeout = 0
}
