package cli

import (
	"fmt"
	"io"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/resolver"
	"github.com/hbjs97/goto/internal/ui"
	"go.uber.org/zap"
)

// runRegister는 프로젝트를 추가한다. 설정 파일이 없으면 새로 만든다.
func (a *App) runRegister(out io.Writer, name, path string) error {
	cfg, err := config.LoadOrEmpty(a.CfgPath)
	if err != nil {
		return err
	}

	p, err := cfg.Add(name, path)
	if err != nil {
		return err
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	a.logger.Debug("project registered", zap.String("project", p.Name), zap.String("path", p.Path))

	fmt.Fprintf(out, "registered %s -> %s\n", p.Name, p.Path)
	return nil
}

// runDelete는 확인 후 프로젝트를 제거한다.
func (a *App) runDelete(out io.Writer, name string, yes bool) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}

	if len(resolver.Match(cfg, name)) == 0 {
		return fmt.Errorf("cli.delete: %q: %w", name, config.ErrNotFound)
	}

	if !yes && a.settings.IsConfirmDelete() {
		ok, err := a.Confirmer.Confirm(fmt.Sprintf("Remove project %q from %s?", name, a.CfgPath))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "aborted")
			return nil
		}
	}

	if err := cfg.Remove(name); err != nil {
		return err
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	a.logger.Debug("project removed", zap.String("project", name))

	fmt.Fprintf(out, "removed %s\n", name)
	return nil
}

// runList는 프로젝트 목록을 이름순으로 출력한다.
func (a *App) runList(out io.Writer) error {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return err
	}
	fmt.Fprint(out, ui.ProjectList(cfg.Sorted()))
	return nil
}
