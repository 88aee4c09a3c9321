package jsast

// Handler is invoked for each node of a kind it was registered for.
type Handler func(n *Node)

// Walker dispatches node-kind handlers over a file's arena in a single
// document-order pass. Handlers for the same kind run in registration
// order, so infrastructure registered before consumers always observes a
// node first.
type Walker struct {
	handlers map[string][]Handler
}

func NewWalker() *Walker {
	return &Walker{handlers: make(map[string][]Handler)}
}

// On registers h for every node of the given kind.
func (w *Walker) On(kind string, h Handler) {
	w.handlers[kind] = append(w.handlers[kind], h)
}

// OnAny registers h for each of the given kinds.
func (w *Walker) OnAny(kinds []string, h Handler) {
	for _, k := range kinds {
		w.On(k, h)
	}
}

// Walk runs the registered handlers over every node of f in index order.
// Index order is pre-order, so parents are visited before children.
func (w *Walker) Walk(f *File) {
	for _, n := range f.Nodes {
		for _, h := range w.handlers[n.Kind] {
			h(n)
		}
	}
}
