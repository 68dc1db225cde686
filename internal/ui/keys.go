package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Player key.Binding
	Cancel key.Binding
	Resume key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Player: key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4 1-4", "接触")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "取消选择")),
		Resume: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "下一回合")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "暂停")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "退出")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Player, k.Resume, k.Pause, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Player, k.Cancel}, {k.Resume, k.Pause, k.Quit}}
}
