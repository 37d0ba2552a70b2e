package main

import (
	"strings"
	"sync"

	"github.com/five82/wildwave/internal/app"
)

type globalFlags struct {
	config   string
	prefs    string
	endpoint string
	logLevel string
	envFile  string
}

type commandContext struct {
	flags *globalFlags

	envOnce sync.Once
	env     *app.Environment
	envErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) appOptions() app.Options {
	return app.Options{
		ConfigPath: strings.TrimSpace(c.flags.config),
		PrefsPath:  strings.TrimSpace(c.flags.prefs),
		EnvFile:    strings.TrimSpace(c.flags.envFile),
		Endpoint:   strings.TrimSpace(c.flags.endpoint),
		LogLevel:   strings.TrimSpace(c.flags.logLevel),
		Version:    version,
	}
}

// ensureEnvironment builds the shared environment once per invocation.
func (c *commandContext) ensureEnvironment() (*app.Environment, error) {
	c.envOnce.Do(func() {
		c.env, c.envErr = app.Setup(c.appOptions())
	})
	return c.env, c.envErr
}

func (c *commandContext) close() {
	if c.env != nil {
		_ = c.env.Close()
	}
}
