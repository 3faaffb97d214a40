package curriculum

// Highlight holds the direct neighbours of the hovered discipline.
type Highlight struct {
	Hovered       string
	Prerequisites map[string]struct{}
	Successors    map[string]struct{}
}

// Highlight computes the adjacency sets for the hovered code. An empty code
// means nothing is hovered and yields empty sets.
func (g *Graph) Highlight(hovered string) Highlight {
	h := Highlight{
		Hovered:       hovered,
		Prerequisites: make(map[string]struct{}),
		Successors:    make(map[string]struct{}),
	}
	if hovered == "" {
		return h
	}
	for _, p := range g.PrerequisitesOf(hovered) {
		h.Prerequisites[p] = struct{}{}
	}
	for _, s := range g.SuccessorsOf(hovered) {
		h.Successors[s] = struct{}{}
	}
	return h
}

// IsHovered reports whether code is the hovered discipline.
func (h Highlight) IsHovered(code string) bool {
	return h.Hovered != "" && h.Hovered == code
}

// IsPrerequisite reports whether code is a direct prerequisite of the
// hovered discipline.
func (h Highlight) IsPrerequisite(code string) bool {
	_, ok := h.Prerequisites[code]
	return ok
}

// IsSuccessor reports whether code directly depends on the hovered discipline.
func (h Highlight) IsSuccessor(code string) bool {
	_, ok := h.Successors[code]
	return ok
}
