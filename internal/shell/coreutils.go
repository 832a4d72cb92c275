package shell

import (
	"context"

	"github.com/u-root/u-root/pkg/core"
	"github.com/u-root/u-root/pkg/core/cat"
	"github.com/u-root/u-root/pkg/core/ls"
	"github.com/u-root/u-root/pkg/core/mkdir"
	"github.com/u-root/u-root/pkg/core/touch"
	"mvdan.cc/sh/v3/interp"
)

// In-process implementations for the utilities the curriculum demonstrates.
// Anything not listed here falls through to $PATH lookup.
var coreUtils = map[string]func() core.Command{
	"cat":   func() core.Command { return cat.New() },
	"ls":    func() core.Command { return ls.New() },
	"mkdir": func() core.Command { return mkdir.New() },
	"touch": func() core.Command { return touch.New() },
}

func (s *Shell) coreUtilsHandler() func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
		return func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return next(ctx, args)
			}

			program, programArgs := args[0], args[1:]

			newCoreUtil, ok := coreUtils[program]
			if !ok {
				return next(ctx, args)
			}

			c := interp.HandlerCtx(ctx)

			cmd := newCoreUtil()
			cmd.SetIO(c.Stdin, c.Stdout, c.Stderr)
			cmd.SetWorkingDir(c.Dir)
			cmd.SetLookupEnv(func(key string) (string, bool) {
				v := c.Env.Get(key)
				return v.Str, v.Set
			})
			return cmd.RunContext(ctx, programArgs...)
		}
	}
}
