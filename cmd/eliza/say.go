package main

import (
	"fmt"
	"strings"

	// Packages
	eliza "github.com/dialogik/go-eliza"
	session "github.com/dialogik/go-eliza/pkg/session"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SayCmd struct {
	Text []string `arg:"" help:"User input text"`
	Lang string   `name:"lang" help:"Session language (en or sv)" optional:""`
	Tag  bool     `name:"tag" help:"Prefix the reply with its language tag"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *SayCmd) Run(globals *Globals) error {
	code := globals.cfg.Language
	if cmd.Lang != "" {
		code = eliza.Lang(cmd.Lang)
	}

	opts := []session.Opt{session.WithLanguage(code)}
	if seed := globals.seed(); seed != 0 {
		opts = append(opts, session.WithSeed(seed))
	}

	ctrl, err := session.New(opts...)
	if err != nil {
		return err
	}

	reply, err := ctrl.Turn(strings.Join(cmd.Text, " "))
	if err != nil {
		return err
	}
	if reply == nil {
		return nil
	}

	if cmd.Tag {
		fmt.Printf("[%s] %s\n", reply.Lang, reply.Text)
	} else {
		fmt.Println(reply.Text)
	}
	return nil
}
