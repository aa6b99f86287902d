package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Pause      key.Binding
	SeekBack   key.Binding
	SeekFwd    key.Binding
	Effects    key.Binding
	Effect     key.Binding
	Style      key.Binding
	Boxes      key.Binding
	NextScheme key.Binding
	PrevScheme key.Binding
	BPMUp      key.Binding
	BPMDown    key.Binding
	Repeat     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Pause:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause")),
		SeekBack:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-5s")),
		SeekFwd:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "+5s")),
		Effects:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "effects on/off")),
		Effect:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cycle effect")),
		Style:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "bar style")),
		Boxes:      key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "boxes")),
		NextScheme: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next scheme")),
		PrevScheme: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev scheme")),
		BPMUp:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bpm +10")),
		BPMDown:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "bpm -10")),
		Repeat:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "repeat")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.SeekBack, k.SeekFwd, k.Effect, k.Style, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.SeekBack, k.SeekFwd, k.Repeat},
		{k.Effects, k.Effect, k.Style, k.Boxes},
		{k.NextScheme, k.PrevScheme, k.BPMUp, k.BPMDown},
		{k.Help, k.Quit},
	}
}
