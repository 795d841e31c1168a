// ABOUTME: Tests for the pet list screen model
// ABOUTME: Verifies row rendering, photo markers, and emitted messages

package petlist

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"petradar/internal/api"
)

var testPets = []api.Pet{
	{ID: 7, Name: "Rex", Species: "Dog", Breed: "Beagle"},
	{ID: 9, Name: "Misha", Species: "Cat"},
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func emitted(t *testing.T, p *PetList, key string) tea.Msg {
	t.Helper()
	model, cmd := p.Update(keyMsg(key))
	if _, ok := model.(*PetList); !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestPetList_ViewShowsPetsAndPhotoMarker(t *testing.T) {
	p := New(testPets, func(petID int64) bool { return petID == 7 }, 10)
	view := p.View()

	if !strings.Contains(view, "Rex") || !strings.Contains(view, "Misha") {
		t.Errorf("expected both pets in view:\n%s", view)
	}
	if !strings.Contains(view, "yes") {
		t.Errorf("expected photo marker for pet 7:\n%s", view)
	}
}

func TestPetList_EnterSelectsHighlightedPet(t *testing.T) {
	p := New(testPets, nil, 10)
	msg := emitted(t, p, "enter")

	selected, ok := msg.(SelectedMsg)
	if !ok {
		t.Fatalf("expected SelectedMsg, got %T", msg)
	}
	if selected.Pet.ID != 7 {
		t.Errorf("expected first pet selected, got id %d", selected.Pet.ID)
	}
}

func TestPetList_ActionKeys(t *testing.T) {
	p := New(testPets, nil, 10)

	if _, ok := emitted(t, p, "a").(AddMsg); !ok {
		t.Error("expected AddMsg for 'a'")
	}
	if msg, ok := emitted(t, p, "e").(EditMsg); !ok || msg.Pet.ID != 7 {
		t.Errorf("expected EditMsg for pet 7, got %#v", msg)
	}
	if msg, ok := emitted(t, p, "x").(DeleteMsg); !ok || msg.Pet.ID != 7 {
		t.Errorf("expected DeleteMsg for pet 7, got %#v", msg)
	}
	if _, ok := emitted(t, p, "r").(RefreshMsg); !ok {
		t.Error("expected RefreshMsg for 'r'")
	}
	if _, ok := emitted(t, p, "b").(BackMsg); !ok {
		t.Error("expected BackMsg for 'b'")
	}
}

func TestPetList_EmptyListSelectionIsNoop(t *testing.T) {
	p := New(nil, nil, 10)
	if msg := emitted(t, p, "enter"); msg != nil {
		t.Fatalf("expected no message on empty list, got %T", msg)
	}
	if !strings.Contains(p.View(), "No pets yet") {
		t.Error("expected empty-state text")
	}
}
