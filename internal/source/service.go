// Package source loads the records the picker works on: the files of the
// working directory and the lines of the selected playbook.
package source

// Service defines the contract for reading playbooks.
// Views depend on this interface, never on the filesystem directly.
type Service interface {
	// Root returns the absolute directory playbooks are read from.
	Root() string
	// Files lists the regular, non-hidden files of Root.
	Files(sorted bool) ([]File, error)
	// Playbook reads the named file under Root and returns its kept lines.
	Playbook(name string, ignoreComments bool) ([]Line, error)
}
