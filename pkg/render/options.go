package render

// RenderOptions describe per-request data renderers use without changing the
// trial configuration.
type RenderOptions struct {
	// Action is the URL the form posts to. When empty the browser runtime
	// suppresses the default submission and only raises the submit event.
	Action string
	// Method defaults to POST when Action is set.
	Method string
	// Hidden carries extra hidden inputs (CSRF token, trial id) rendered
	// inside the form in sorted order.
	Hidden map[string]string
	// Errors lists form-level messages shown above the submit control, for
	// example after a rejected submission.
	Errors []string
	// CommentLabel overrides the label of the comment box.
	CommentLabel string
}

// DefaultCommentLabel labels the comment box when no override is supplied.
const DefaultCommentLabel = "Comment:"

// ResolvedMethod returns the form method to render.
func (o RenderOptions) ResolvedMethod() string {
	if o.Method != "" {
		return o.Method
	}
	if o.Action != "" {
		return "post"
	}
	return ""
}

// ResolvedCommentLabel returns the comment label to render.
func (o RenderOptions) ResolvedCommentLabel() string {
	if o.CommentLabel != "" {
		return o.CommentLabel
	}
	return DefaultCommentLabel
}
