package hotkey

import xhotkey "golang.design/x/hotkey"

func comboModifiers(c Combo) []xhotkey.Modifier {
	var mods []xhotkey.Modifier
	if c.Ctrl {
		mods = append(mods, xhotkey.ModCtrl)
	}
	if c.Shift {
		mods = append(mods, xhotkey.ModShift)
	}
	if c.Alt {
		mods = append(mods, xhotkey.ModAlt)
	}
	if c.Super {
		mods = append(mods, xhotkey.ModWin)
	}
	return mods
}
