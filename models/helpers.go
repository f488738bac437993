package models

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneUint(u *uint) *uint {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}

// StringPtr returns a pointer to s, or nil when s is empty.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UintPtr returns a pointer to u, or nil when u is zero.
func UintPtr(u uint) *uint {
	if u == 0 {
		return nil
	}
	return &u
}
