package core

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

// Titles lists screen titles from bottom to top.
func (s ScreenStack) Titles() []string {
	out := make([]string, 0, len(s.items))
	for _, screen := range s.items {
		out = append(out, screen.Title())
	}
	return out
}

func (s *ScreenStack) replaceTop(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}
