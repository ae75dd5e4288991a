package main

import (
	"context"
	"errors"
	"io"
	"os"

	// Packages
	errgroup "golang.org/x/sync/errgroup"

	session "github.com/dialogik/go-eliza/pkg/session"
	speech "github.com/dialogik/go-eliza/pkg/speech"
	ui "github.com/dialogik/go-eliza/pkg/ui"
	bubbletea "github.com/dialogik/go-eliza/pkg/ui/bubbletea"
	term "github.com/dialogik/go-eliza/pkg/ui/term"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	TUI   bool `name:"tui" help:"Use the full-screen terminal interface"`
	Speak bool `name:"speak" help:"Echo replies to the speech channel on stderr"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) error {
	// Create the frontend
	var chat ui.ChatUI
	if cmd.TUI {
		tui, err := bubbletea.New()
		if err != nil {
			return err
		}
		chat = tui
	} else {
		chat = term.New(os.Stdin, os.Stdout, "you> ")
	}
	defer chat.Close()

	// The synthesizer stands in for the external text-to-speech
	// collaborator; it consumes replies concurrently with input
	// handling, while turns themselves stay strictly sequential
	synth := speech.Null()
	if cmd.Speak {
		synth = speech.NewWriter(os.Stderr, globals.cfg.Speech)
	}

	spoken := make(chan session.Reply, 4)
	g, ctx := errgroup.WithContext(globals.ctx)
	g.Go(func() error {
		for reply := range spoken {
			if err := synth.Speak(ctx, reply.Text, reply.Lang); err != nil {
				return err
			}
		}
		return nil
	})
	g.Go(func() error {
		defer close(spoken)
		return cmd.loop(ctx, globals, chat, spoken)
	})

	return g.Wait()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// loop runs numbered sessions until end of input. Each session starts
// in English; a quit word ends it with a farewell and a fresh session
// begins.
func (cmd *ChatCmd) loop(ctx context.Context, globals *Globals, chat ui.ChatUI, spoken chan<- session.Reply) error {
	for n := 1; ; n++ {
		ctrl, err := newController(globals, chat)
		if err != nil {
			return err
		}

		chat.System("--- Session %d ---", n)
		chat.System("Hello! Say 'quit' or 'slut' to exit.")

		tui, _ := chat.(*bubbletea.Terminal)
		for {
			line, err := chat.Receive(ctx)
			if errors.Is(err, io.EOF) {
				return nil
			} else if err != nil {
				return err
			}

			if tui != nil {
				tui.SetTyping(true)
			}
			reply, err := ctrl.Turn(line)
			if err != nil {
				return err
			}
			if reply == nil {
				if tui != nil {
					tui.SetTyping(false)
				}
				continue
			}

			// Reply clears the typing state in the TUI
			if err := chat.Reply(reply.Text); err != nil {
				return err
			}
			if tui != nil {
				tui.SetLanguage(ctrl.Active())
			}

			select {
			case spoken <- *reply:
			case <-ctx.Done():
				return ctx.Err()
			}

			if reply.Farewell {
				break
			}
		}
	}
}

// newController builds a session controller from the globals; debug
// traces go to the frontend so they don't corrupt a TUI screen
func newController(globals *Globals, chat ui.ChatUI) (*session.Controller, error) {
	opts := []session.Opt{}
	if seed := globals.seed(); seed != 0 {
		opts = append(opts, session.WithSeed(seed))
	}
	if globals.Debug {
		opts = append(opts, session.WithDebug(func(format string, args ...any) {
			chat.System("debug: "+format, args...)
		}))
	}
	return session.New(opts...)
}

func (globals *Globals) seed() int64 {
	if globals.Seed != 0 {
		return globals.Seed
	}
	return globals.cfg.Seed
}
