package main

import (
	"fmt"
	"sort"
	"strings"

	// Packages
	lang "github.com/dialogik/go-eliza/pkg/lang"
	table "github.com/dialogik/go-eliza/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type LanguagesCmd struct{}

// languageTable adapts the loaded languages to the table renderer
type languageTable struct {
	langs []*lang.Language
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *LanguagesCmd) Run(globals *Globals) error {
	languages, err := lang.Load()
	if err != nil {
		return err
	}

	data := &languageTable{}
	for _, l := range languages {
		data.langs = append(data.langs, l)
	}
	sort.Slice(data.langs, func(i, j int) bool {
		return data.langs[i].Code < data.langs[j].Code
	})

	fmt.Println(table.Render(data))
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// TABLE DATA

func (t *languageTable) Header() []string {
	return []string{"Code", "Name", "Rules", "Reflections", "Quit Words", "Description"}
}

func (t *languageTable) Len() int {
	return len(t.langs)
}

func (t *languageTable) Row(i int) []any {
	l := t.langs[i]
	return []any{
		table.Bold{Value: string(l.Code)},
		l.Name,
		len(l.Rules),
		len(l.Reflections),
		strings.Join(l.Quits, ", "),
		l.Description,
	}
}
