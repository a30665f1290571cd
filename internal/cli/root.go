package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hbjs97/goto/internal/config"
	"github.com/hbjs97/goto/internal/logging"
	"github.com/hbjs97/goto/internal/procexec"
	"github.com/hbjs97/goto/internal/prompt"
	"github.com/hbjs97/goto/internal/settings"
	"github.com/hbjs97/goto/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// App은 CLI 실행에 필요한 의존성을 담는다. 테스트에서는 fake를 주입한다.
type App struct {
	Procs        procexec.Procs
	Confirmer    prompt.Confirmer
	Getenv       func(string) string
	CfgPath      string
	SettingsPath string
	Verbose      bool

	settings *settings.Settings
	logger   *zap.Logger
}

// NewApp은 실제 프로세스/프롬프트 구현을 사용하는 App을 생성한다.
func NewApp() *App {
	return &App{
		Procs:     &procexec.RealProcs{},
		Confirmer: &prompt.HuhConfirmer{},
		Getenv:    os.Getenv,
	}
}

type rootOptions struct {
	register bool
	delete   bool
	list     bool
	yes      bool
}

// NewRootCmd는 goto CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "goto <project_name>",
		Short: "goto: a terminal project switcher",
		Long: `goto: a terminal project switcher

Looks up <project_name> in the project file (.goto.json in the current
directory by default), changes into its path and replaces the current
shell with a new one rooted there.`,
		Example: `  goto api                  switch to named project
  goto -r api ~/src/api     register new project path
  goto -d api               remove project from config
  goto -l                   list all project configs`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          opts.validateArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch {
			case opts.register:
				return a.runRegister(out, args[0], args[1])
			case opts.delete:
				return a.runDelete(out, args[0], opts.yes)
			case opts.list:
				return a.runList(out)
			default:
				return a.runSwitch(out, args[0])
			}
		},
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = config.DefaultFile
	}
	defaultSettings := a.SettingsPath
	if defaultSettings == "" {
		defaultSettings = settings.DefaultPath()
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "project file path")
	cmd.PersistentFlags().StringVar(&a.SettingsPath, "settings", defaultSettings, "settings file path")
	cmd.PersistentFlags().BoolVar(&a.Verbose, "verbose", false, "debug logging to stderr")

	cmd.Flags().BoolVarP(&opts.register, "register", "r", false, "register new project path: -r NAME PATH")
	cmd.Flags().BoolVarP(&opts.delete, "delete", "d", false, "remove project from config: -d NAME")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "list all project configs")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "do not ask for confirmation on delete")
	cmd.MarkFlagsMutuallyExclusive("register", "delete", "list")

	return cmd
}

// validateArgs는 동작별 인자 개수를 검사한다. 설정 파일을 읽기 전에 실행된다.
func (o *rootOptions) validateArgs(cmd *cobra.Command, args []string) error {
	want := 1
	switch {
	case o.register:
		want = 2
	case o.list:
		want = 0
	}
	if len(args) != want {
		cmd.PrintErr(cmd.UsageString())
		return fmt.Errorf("cli: %w: expected %d argument(s), received %d", ErrUsage, want, len(args))
	}
	return nil
}

func (a *App) prepare(logOut io.Writer) error {
	logger, err := logging.New(logOut, a.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	s, err := settings.Load(a.SettingsPath)
	if err != nil {
		return err
	}
	a.settings = s
	a.logger.Debug("settings loaded",
		zap.String("path", a.SettingsPath),
		zap.String("replace_mode", string(s.ReplaceMode)),
	)
	return nil
}

// ReportError는 최상위에서 에러를 한 번 출력한다.
func ReportError(w io.Writer, err error) {
	ui.Error(w, err)
}
