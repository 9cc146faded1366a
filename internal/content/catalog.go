package content

// Catalog holds the page sections in display order.
type Catalog struct {
	order []string
	byID  map[string]Section
}

func NewCatalog(sections ...Section) *Catalog {
	c := &Catalog{byID: make(map[string]Section, len(sections))}
	for _, s := range sections {
		if _, dup := c.byID[s.ID]; !dup {
			c.order = append(c.order, s.ID)
		}
		c.byID[s.ID] = s
	}
	return c
}

// DefaultCatalog returns the sections published on the site.
func DefaultCatalog() *Catalog {
	return NewCatalog(About(), Experience(), Research(), Contact())
}

func (c *Catalog) List() []Section {
	out := make([]Section, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *Catalog) Get(id string) (Section, bool) {
	s, ok := c.byID[id]
	return s, ok
}
