package diagram

// SafeLabel makes free text usable as a PlantUML label. The markup treats
// quotes, brackets and pipes as syntax, so everything outside letters,
// digits, underscore and space is stripped, the result is truncated to 60
// characters, and an empty result falls back to "Item".
func SafeLabel(text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '_', r == ' ':
			out = append(out, r)
		}
	}
	if len(out) > 60 {
		out = out[:60]
	}
	if len(out) == 0 {
		return "Item"
	}
	return string(out)
}
