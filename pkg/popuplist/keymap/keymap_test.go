package keymap

import (
	"errors"
	"testing"

	"github.com/BrandonKowalski/popuplist/pkg/popuplist/constants"
)

func TestDefaultDecode(t *testing.T) {
	k := Default()

	tests := []struct {
		part    constants.Part
		key     string
		wantCmd constants.Command
		wantArg string
	}{
		{constants.PartComboboxInput, "enter", constants.CommandConfirm, ""},
		{constants.PartComboboxInput, "Down", constants.CommandNext, ""},
		{constants.PartComboboxInput, "a", constants.CommandUnassigned, ""},
		{constants.PartMenuButton, "up", constants.CommandLast, ""},
		{constants.PartMenuButton, " ", constants.CommandToggle, ""},
		{constants.PartMenuItems, "pgdown", constants.CommandLast, ""},
		{constants.PartMenuItems, "tab", constants.CommandIgnore, ""},
		{constants.PartMenuItems, "g", constants.CommandCharacter, "g"},
		{constants.PartMenuItems, "G", constants.CommandCharacter, "G"},
		{constants.PartMenuItems, "backspace", constants.CommandUnassigned, ""},
		{constants.PartUnknown, "enter", constants.CommandUnassigned, ""},
	}

	for _, tt := range tests {
		t.Run(tt.part.String()+"/"+tt.key, func(t *testing.T) {
			cmd, arg := k.Decode(tt.part, tt.key)
			if cmd != tt.wantCmd || arg != tt.wantArg {
				t.Errorf("Decode = (%v, %q), want (%v, %q)", cmd, arg, tt.wantCmd, tt.wantArg)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	t.Run("OverridesAndRemoves", func(t *testing.T) {
		k := Default()
		err := k.Merge(map[string]map[string]string{
			"menu_items": {
				"j":    "next",
				"k":    "previous",
				"home": "",
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cmd, _ := k.Decode(constants.PartMenuItems, "j"); cmd != constants.CommandNext {
			t.Errorf("expected j -> next, got %v", cmd)
		}
		if cmd, _ := k.Decode(constants.PartMenuItems, "home"); cmd != constants.CommandUnassigned {
			t.Errorf("expected home unbound, got %v", cmd)
		}
		if _, ok := k.Bindings(constants.PartMenuItems)["k"]; !ok {
			t.Error("expected k in bindings")
		}
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name      string
			overrides map[string]map[string]string
			want      error
		}{
			{"Section", map[string]map[string]string{"sidebar": {"j": "next"}}, ErrUnknownSection},
			{"Key", map[string]map[string]string{"menu_items": {"hyper+x": "next"}}, ErrUnknownKey},
			{"Command", map[string]map[string]string{"menu_items": {"j": "jump"}}, ErrUnknownCommand},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				k := Default()
				before := k.Bindings(constants.PartMenuItems)

				err := k.Merge(tt.overrides)
				if !errors.Is(err, tt.want) {
					t.Fatalf("expected %v, got %v", tt.want, err)
				}
				if len(k.Bindings(constants.PartMenuItems)) != len(before) {
					t.Error("failed merge should leave the keymap unchanged")
				}
			})
		}
	})
}
