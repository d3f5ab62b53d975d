package source

// File is a playbook candidate found in the working directory. Its id is the
// 1-based rank in the listing.
type File struct {
	id   int
	name string
}

// NewFile creates a File record.
func NewFile(id int, name string) File { return File{id: id, name: name} }

// ID returns the 1-based rank of the file.
func (f File) ID() int { return f.id }

// Name returns the file base name.
func (f File) Name() string { return f.name }

// Line is one kept line of a playbook. Its id is the 1-based rank among the
// kept lines, so blank and comment lines do not consume numbers.
type Line struct {
	id      int
	content string
}

// NewLine creates a Line record.
func NewLine(id int, content string) Line { return Line{id: id, content: content} }

// ID returns the 1-based rank of the line.
func (l Line) ID() int { return l.id }

// Name returns the line content.
func (l Line) Name() string { return l.content }
