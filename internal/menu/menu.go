package menu

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Kind enumerates the actions reachable from the main menu.
type Kind int

const (
	KindInputBook Kind = iota
	KindOutputBook
	KindSortByPrice
	KindPrintAll
	KindWriteFile
	KindReadFile
	KindExit
)

var kindIDs = [...]string{
	KindInputBook:   "book:input",
	KindOutputBook:  "book:output",
	KindSortByPrice: "book:sort",
	KindPrintAll:    "book:print",
	KindWriteFile:   "file:write",
	KindReadFile:    "file:read",
	KindExit:        "exit",
}

// ID returns the stable identifier used for menu items and trace events.
func (k Kind) ID() string {
	if k < 0 || int(k) >= len(kindIDs) {
		return "unknown"
	}
	return kindIDs[k]
}

func (k Kind) String() string {
	return k.ID()
}

// Option binds a display title to an action kind.
type Option struct {
	Title string
	Kind  Kind
}

// Item converts the option into a navigator entry.
func (o Option) Item() Item {
	return Item{ID: o.Kind.ID(), Label: o.Title}
}

// Options returns the main menu in display order.
func Options() []Option {
	return []Option{
		// vvv do NOT reorder these! vvv
		{Title: "Input book data", Kind: KindInputBook},
		{Title: "Output book data", Kind: KindOutputBook},
		{Title: "Sort books by price", Kind: KindSortByPrice},
		{Title: "Print all books", Kind: KindPrintAll},
		{Title: "Write to file", Kind: KindWriteFile},
		{Title: "Read from file", Kind: KindReadFile},
		{Title: "Exit", Kind: KindExit},
		// ^^^ do NOT reorder these! ^^^
	}
}

// ActionResult communicates the outcome of executing a menu action. Info is
// the notice shown on success; Detail is extra context for verbose mode.
type ActionResult struct {
	Kind   Kind
	Info   string
	Detail string
	Err    error
}
