package workflow

import (
	"fmt"
	"strings"
)

// CommandKind identifies one of the mutating operations a user can arm.
type CommandKind int

const (
	CreateFolder CommandKind = iota + 1
	DeleteFolder
	RenameFolder
	CreateFile
	DeleteFile
	RenameFile
)

var commandNames = map[CommandKind]string{
	CreateFolder: "create_folder",
	DeleteFolder: "delete_folder",
	RenameFolder: "rename_folder",
	CreateFile:   "create_file",
	DeleteFile:   "delete_file",
	RenameFile:   "rename_file",
}

var commandTitles = map[CommandKind]string{
	CreateFolder: "Create Folder",
	DeleteFolder: "Delete Folder",
	RenameFolder: "Rename Folder",
	CreateFile:   "Create File",
	DeleteFile:   "Delete File",
	RenameFile:   "Rename File",
}

// AllCommands returns every command kind in display order.
func AllCommands() []CommandKind {
	return []CommandKind{CreateFolder, DeleteFolder, RenameFolder, CreateFile, DeleteFile, RenameFile}
}

// ParseCommandKind accepts the snake_case name ("rename_file") or the kebab-case
// variant ("rename-file").
func ParseCommandKind(s string) (CommandKind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for kind, n := range commandNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Valid reports whether k is one of the six known commands.
func (k CommandKind) Valid() bool {
	_, ok := commandNames[k]
	return ok
}

// String returns the snake_case name.
func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Title returns the human label, e.g. "Rename File".
func (k CommandKind) Title() string {
	if title, ok := commandTitles[k]; ok {
		return title
	}
	return k.String()
}

// Arity is the number of names the command takes: two for renames, one otherwise.
func (k CommandKind) Arity() int {
	if k == RenameFolder || k == RenameFile {
		return 2
	}
	return 1
}

// InputLabels names each input slot in order.
func (k CommandKind) InputLabels() []string {
	if k.Arity() == 2 {
		return []string{"Current Name:", "New Name:"}
	}
	return []string{"Enter Input:"}
}

// IsFolder reports whether the command targets directories.
func (k CommandKind) IsFolder() bool {
	return k == CreateFolder || k == DeleteFolder || k == RenameFolder
}
