package tui

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/young1lin/tabline/internal/statusbar/tabs"
)

// orderTabs sorts a copy of list by position and returns it with the index
// of the first active tab, or -1
func orderTabs(list []tabs.Info) ([]tabs.Info, int) {
	ordered := slices.Clone(list)
	slices.SortStableFunc(ordered, func(a, b tabs.Info) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return ordered, slices.IndexFunc(ordered, func(t tabs.Info) bool { return t.Active })
}

// activate marks only the tab at idx as active
func activate(list []tabs.Info, idx int) []tabs.Info {
	for i := range list {
		list[i].Active = i == idx
	}
	return list
}

// shiftActive moves the active tab by delta, wrapping around
func shiftActive(list []tabs.Info, delta int) []tabs.Info {
	ordered, active := orderTabs(list)
	if len(ordered) == 0 {
		return ordered
	}
	if active < 0 {
		active = 0
	}
	n := len(ordered)
	return activate(ordered, ((active+delta)%n+n)%n)
}

// addTab appends a tab after the last one and makes it active
func addTab(list []tabs.Info) []tabs.Info {
	ordered, _ := orderTabs(list)
	pos := 0
	if len(ordered) > 0 {
		pos = ordered[len(ordered)-1].Position + 1
	}
	ordered = append(ordered, tabs.Info{Position: pos, Name: fmt.Sprintf("tab %d", pos+1)})
	return activate(ordered, len(ordered)-1)
}

// closeTab removes the active tab, renumbers the rest and activates the
// tab that took its place
func closeTab(list []tabs.Info) []tabs.Info {
	ordered, active := orderTabs(list)
	if active < 0 {
		return ordered
	}
	ordered = slices.Delete(ordered, active, active+1)
	for i := range ordered {
		ordered[i].Position = i
	}
	if len(ordered) == 0 {
		return ordered
	}
	return activate(ordered, min(active, len(ordered)-1))
}

// toggle flips a flag on the active tab
func toggle(list []tabs.Info, flag func(*tabs.Info)) []tabs.Info {
	ordered, active := orderTabs(list)
	if active >= 0 {
		flag(&ordered[active])
	}
	return ordered
}
