package tui

// dataChangedMsg reports that the hero data file changed on disk.
type dataChangedMsg struct{}
