package structure

// Container extracts the members of a composite declaration (an impl block,
// a class body) as individually wrapped chunks sharing a single header.
type Container struct {
	header  string
	leading []string
	chunks  []string
}

// NewContainer starts a container whose members are wrapped in header.
func NewContainer(header string) *Container {
	return &Container{header: header}
}

// Header returns the synthesized declaration used for every member.
func (c *Container) Header() string {
	return c.header
}

// AddLeading records a comment or attribute preceding the next member.
// Text is expected to carry its indentation, as returned by MemberText.
func (c *Container) AddLeading(text string) {
	c.leading = append(c.leading, text)
}

// AddMember wraps member together with the pending leading lines.
func (c *Container) AddMember(member string) {
	c.chunks = append(c.chunks, WrapMember(c.header, c.leading, member))
	c.leading = c.leading[:0]
}

// Chunks returns the wrapped members. Leading lines not followed by a member
// are discarded.
func (c *Container) Chunks() []string {
	c.leading = c.leading[:0]
	return c.chunks
}
