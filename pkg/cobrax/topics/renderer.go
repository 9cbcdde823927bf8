package topics

// Renderer formats topic content for display
type Renderer interface {
	// Render returns content formatted for the terminal. format is the
	// topic file's extension, including the dot.
	Render(content string, format string) string
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(content, format string) string

func (f RendererFunc) Render(content, format string) string {
	return f(content, format)
}

// PlainRenderer returns content unchanged
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, _ string) string {
	return content
}
