package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/resolver"
	"github.com/hbjs97/goto/internal/shell"
	"github.com/hbjs97/goto/internal/workdir"
	"go.uber.org/zap"
)

// runSwitch는 load → resolve → chdir → shell 교체 순으로 실행한다.
func (a *App) runSwitch(out io.Writer, name string) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	a.logger.Debug("config loaded", zap.String("path", a.CfgPath), zap.Int("projects", len(cfg.Projects)))

	project, err := resolver.Resolve(cfg, name)
	if errors.Is(err, resolver.ErrNoMatch) {
		fmt.Fprintln(out, "No matches found")
		return nil
	}
	if err != nil {
		return err
	}

	if err := workdir.Change(project.Path); err != nil {
		return err
	}
	a.logger.Debug("working directory changed", zap.String("project", project.Name), zap.String("path", project.Path))

	r := &shell.Replacer{
		Procs:  a.Procs,
		Mode:   a.settings.ReplaceMode,
		Out:    out,
		Logger: a.logger,
	}
	getenv := a.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	return r.Replace(shell.Name(getenv, a.settings.DefaultShell))
}
