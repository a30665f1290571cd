package shell

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/hbjs97/goto/internal/procexec"
	"github.com/hbjs97/goto/internal/settings"
	"go.uber.org/zap"
)

// ErrSpawn는 셸을 실행할 수 없을 때 반환된다.
var ErrSpawn = errors.New("could not start new shell")

// ErrParentKill는 부모 셸 종료에 실패하여 자식 셸을 정리했을 때 반환된다.
var ErrParentKill = errors.New("could not kill parent shell")

// ErrUnrecoverable는 부모와 자식 셸 모두 종료에 실패했을 때 반환된다.
var ErrUnrecoverable = errors.New("could not kill child shell")

// Name은 실행할 셸 이름을 결정한다: SHELL 환경변수, fallback, 마지막으로 bash 순이다.
func Name(getenv func(string) string, fallback string) string {
	if sh := getenv("SHELL"); sh != "" {
		return sh
	}
	if fallback != "" {
		return fallback
	}
	return settings.DefaultShell
}

// Replacer는 현재 세션을 새 셸로 교체한다.
type Replacer struct {
	Procs  procexec.Procs
	Mode   settings.ReplaceMode
	Out    io.Writer
	Logger *zap.Logger
}

// Replace는 shellName 셸로 세션을 교체한다. exec 모드가 성공하면 반환하지 않는다.
func (r *Replacer) Replace(shellName string) error {
	mode := r.Mode
	if mode == settings.ModeExec && !r.Procs.CanExec() {
		r.logger().Warn("exec not supported, falling back to spawn")
		mode = settings.ModeSpawn
	}

	switch mode {
	case settings.ModeSpawn:
		return r.spawnAndKillParent(shellName)
	default:
		return r.exec(shellName)
	}
}

func (r *Replacer) exec(shellName string) error {
	path, err := r.Procs.LookPath(shellName)
	if err != nil {
		return fmt.Errorf("shell.Replace: %w: %w", ErrSpawn, err)
	}
	r.logger().Debug("exec shell", zap.String("path", path))

	if err := r.Procs.Exec(path, []string{filepath.Base(shellName)}); err != nil {
		return fmt.Errorf("shell.Replace: %w: %w", ErrSpawn, err)
	}
	return nil
}

// spawnAndKillParent는 부모 PID를 먼저 기록한 뒤 자식 셸을 띄우고 부모에 SIGKILL을 보낸다.
func (r *Replacer) spawnAndKillParent(shellName string) error {
	parent := r.Procs.Getppid()

	path, err := r.Procs.LookPath(shellName)
	if err != nil {
		return fmt.Errorf("shell.Replace: %w: %w", ErrSpawn, err)
	}
	child, err := r.Procs.Start(path)
	if err != nil {
		return fmt.Errorf("shell.Replace: %w: %w", ErrSpawn, err)
	}
	log := r.logger().With(zap.Int("parent_pid", parent), zap.Int("child_pid", child.Pid()))
	log.Debug("child shell started", zap.String("path", path))

	killErr := r.Procs.Kill(parent)
	if killErr == nil {
		fmt.Fprintln(r.Out, "killed")
		return nil
	}
	log.Warn("parent kill failed", zap.Error(killErr))

	if err := child.Kill(); err != nil {
		return fmt.Errorf("shell.Replace: parent pid %d: %v: %w (pid %d, terminate it manually): %w",
			parent, killErr, ErrUnrecoverable, child.Pid(), err)
	}
	return fmt.Errorf("shell.Replace: %w (pid %d): %w", ErrParentKill, parent, killErr)
}

func (r *Replacer) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}
