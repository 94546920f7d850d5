package tui

// cycle moves a focus index by delta, wrapping around n fields.
func cycle(i, delta, n int) int {
	i += delta
	if i < 0 {
		return n - 1
	}
	if i >= n {
		return 0
	}
	return i
}

// deltaFor maps the shared focus-movement keys to a direction.
// Returns 0 for keys that do not move focus.
func deltaFor(key string) int {
	switch key {
	case "tab", "down":
		return 1
	case "shift+tab", "up":
		return -1
	}
	return 0
}
