// internal/models/section.go
package models

// Section is an ordered, toggleable block of free-text content displayed
// on a careers page. Line breaks in Content are preserved. Each section
// carries a stable ID so edits and deletes are unambiguous even when two
// sections share title, type and content.
type Section struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

// ActiveSections returns the sections to display publicly: isActive only,
// sorted ascending by order. The input slice is not modified.
func ActiveSections(sections []Section) []Section {
	out := make([]Section, 0, len(sections))
	for _, s := range sections {
		if s.IsActive {
			out = append(out, s)
		}
	}
	// Insertion sort; section lists are small.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Order < out[j-1].Order; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
