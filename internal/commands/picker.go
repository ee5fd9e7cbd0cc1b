package commands

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/agendanav/internal/core/agenda"
)

// errAborted is returned when the user escapes the picker.
var errAborted = errors.New("aborted")

// pickItem shows an interactive select over every agenda item and returns the
// chosen key.
func pickItem(idx *agenda.Index) (string, error) {
	if idx.Len() == 0 {
		return "", fmt.Errorf("agenda is empty")
	}

	options := make([]huh.Option[string], 0, idx.Len())
	for _, key := range idx.Keys() {
		it, _ := idx.Get(key)
		options = append(options, huh.NewOption(fmt.Sprintf("%-4s %s", it.Attach, it.Title), key))
	}

	var key string
	err := huh.NewSelect[string]().
		Title("Agenda item").
		Options(options...).
		Value(&key).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errAborted
		}
		return "", fmt.Errorf("pick item: %w", err)
	}
	return key, nil
}

// keyOrPick returns the first argument, or asks the user when none is given.
func keyOrPick(arg string, idx *agenda.Index) (string, error) {
	if arg != "" {
		return arg, nil
	}
	return pickItem(idx)
}
