package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/BrandonKowalski/stackanim/pkg/stackanim"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/effect"
	"github.com/BrandonKowalski/stackanim/pkg/stackanim/sdlstage"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

var rootCmd = &cobra.Command{
	Use:          "stackdemo",
	Short:        "Animated screen stack demo",
	Long:         `stackdemo hosts a stackanim.Stack in an SDL window. G and S navigate, Escape goes back.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		configPath, _ := flags.GetString("config")
		logPath, _ := flags.GetString("log-path")
		fontPath, _ := flags.GetString("font")
		lang, _ := flags.GetString("lang")
		return run(cmd.Context(), configPath, logPath, fontPath, lang)
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().String("config", "", "TOML file with stack defaults")
	rootCmd.Flags().String("log-path", "", "File to write JSON logs to")
	rootCmd.Flags().String("font", "", "TTF font for screen titles")
	rootCmd.Flags().String("lang", "en", "Language for screen titles")
}

type page struct {
	Title string
	Color sdl.Color
}

func run(ctx context.Context, configPath, logPath, fontPath, lang string) error {
	cfg := stackanim.DefaultConfig()
	if configPath != "" {
		loaded, err := stackanim.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logPath != "" {
		stackanim.SetLogPath(logPath)
	}
	cfg.ApplyLogLevel()
	defer stackanim.CloseLogger()

	logger := stackanim.GetLogger()

	bundle, err := newBundle()
	if err != nil {
		return err
	}
	title := titles(bundle, lang)

	var stack *stackanim.Stack[page]
	stage, err := sdlstage.New(sdlstage.Options{
		Title:     "stackdemo",
		Resizable: true,
		Theme:     sdlstage.DefaultTheme(fontPath),
		OnBack: func() {
			stack.AnimateBack(stackanim.Params{})
		},
		OnKey: func(key sdl.Keycode) {
			switch key {
			case sdl.K_g:
				stack.AnimateTo("games", stackanim.ToParams[page]{
					Params: stackanim.Params{InEffect: effect.SlideUpInName},
				})
			case sdl.K_s:
				stack.AnimateTo("settings", stackanim.ToParams[page]{
					Params: stackanim.Params{
						InEffect: effect.FadeInName,
						OnAnimationFinish: func() {
							logger.Info("Settings opened")
						},
					},
				})
			}
		},
	})
	if err != nil {
		return err
	}
	defer stage.Close()

	sa := stackanim.CreateStackAnimation[page]()
	screen := func(name string, color uint32) *stackanim.Screen[page] {
		p := page{Title: title(name), Color: sdlstage.HexToColor(color)}
		content := effect.Group{
			stage.Fill(p.Color),
			stage.Text(p.Title, 32, stage.Theme().TextColor).At(40, 40),
		}
		return sa.Screen(name, content, p)
	}

	stack = sa.Stack(stackanim.Options{
		InitialScreen:  "home",
		ContainerStyle: sdlstage.HexToColor(0x101010),
		Logger:         logger,
		Config:         cfg,
	},
		screen("home", 0x1E3A5F),
		screen("games", 0x2E5E3A),
		screen("settings", 0x5F1E3A),
	)

	if err := stage.Run(ctx, stack); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
