package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// StrOrEmpty dereferences p, returning "" for nil.
func StrOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// DifficultyOrEmpty dereferences p, returning the zero Difficulty for nil.
func DifficultyOrEmpty(p *Difficulty) Difficulty {
	if p == nil {
		return ""
	}
	return *p
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
