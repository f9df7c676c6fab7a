package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/bereshit/internal/project"
)

// projectsLoadedMsg carries the result of a list reload.
type projectsLoadedMsg struct {
	seq      int
	projects []project.Project
	err      error
}

// projectDeletedMsg carries the result of a delete.
type projectDeletedMsg struct {
	id  string
	err error
}

// folderOpenedMsg carries the result of an open request.
type folderOpenedMsg struct {
	path string
	err  error
}

// projectCreatedMsg carries the result of a create submission.
type projectCreatedMsg struct {
	project project.Project
	err     error
}

// pathPickedMsg carries the result of the directory picker.
type pathPickedMsg struct {
	path string
	ok   bool
	err  error
}

// storeChangedMsg reports that the store changed outside this process.
type storeChangedMsg struct{}

// toastExpiredMsg clears the toast with the matching sequence number.
type toastExpiredMsg struct {
	seq int
}

// waitForStoreChange blocks until the watcher reports a change.
func waitForStoreChange(events <-chan struct{}) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-events; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}
