package popuplist_test

import (
	"fmt"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist"
)

type node struct{ id string }

func (n *node) ID() string      { return n.id }
func (n *node) SetID(id string) { n.id = id }

func ExampleCombobox() {
	sched := popuplist.NewTickScheduler()
	c := popuplist.NewCombobox(popuplist.ComboboxOptions{Selected: "banana", Scheduler: sched})

	items := map[string]*popuplist.ItemHandle{}
	for _, fruit := range []string{"apple", "banana", "cherry"} {
		items[fruit] = c.Item(&node{id: fruit}, popuplist.ItemOptions{Value: fruit})
	}

	c.Subscribe(func(v popuplist.ComboboxView) {
		fmt.Printf("expanded=%v filter=%q active=%d\n", v.Expanded, v.Filter, v.Active)
	})

	// The host re-renders for the new filter, then ticks.
	c.Filter("an")
	items["apple"].Destroy()
	items["cherry"].Destroy()
	sched.Tick()

	// Output:
	// expanded=false filter="" active=-1
	// expanded=true filter="an" active=-1
	// expanded=true filter="an" active=-1
	// expanded=true filter="an" active=-1
	// expanded=true filter="an" active=0
}

func ExampleMenu() {
	m := popuplist.NewMenu(popuplist.MenuOptions{})
	for _, action := range []string{"copy", "cut", "paste"} {
		m.Item(&node{id: action}, popuplist.ItemOptions{Value: action})
	}

	m.Search("c")
	fmt.Println(m.View().Value)
	m.Search("c")
	fmt.Println(m.View().Value)
	m.Select()
	fmt.Println(m.State().Selected, m.View().Expanded)

	// Output:
	// copy
	// cut
	// 1 false
}
